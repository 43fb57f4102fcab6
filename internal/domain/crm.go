package domain

// CRMProvider is one of the mocked external CRM systems. Real integration is
// out of scope; the connector serves static data shaped like a provider API.
type CRMProvider struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

type CRMConnections struct {
	Connected     bool          `json:"connected"`
	AvailableCRMs []CRMProvider `json:"availableCRMs"`
}

type CRMConnectResult struct {
	Connected bool   `json:"connected"`
	Provider  string `json:"provider"`
	Message   string `json:"message"`
}

// CRMClientRecord is a provider-side client row offered for import.
type CRMClientRecord struct {
	CRMID        string `json:"crmId"`
	CompanyName  string `json:"companyName"`
	Industry     string `json:"industry"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postalCode"`
	ContactName  string `json:"contactName"`
	ContactTitle string `json:"contactTitle"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	CRMSource    string `json:"crmSource"`
}

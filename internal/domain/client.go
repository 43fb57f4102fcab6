package domain

// Client is a company the user writes proposals for. CRMSource/CRMID link
// back to the external record when the client was imported.
type Client struct {
	ID           int64   `json:"id" db:"id"`
	CompanyName  string  `json:"company_name" db:"company_name"`
	Industry     *string `json:"industry,omitempty" db:"industry"`
	Address      *string `json:"address,omitempty" db:"address"`
	City         *string `json:"city,omitempty" db:"city"`
	State        *string `json:"state,omitempty" db:"state"`
	PostalCode   *string `json:"postal_code,omitempty" db:"postal_code"`
	ContactName  *string `json:"contact_name,omitempty" db:"contact_name"`
	ContactTitle *string `json:"contact_title,omitempty" db:"contact_title"`
	Email        *string `json:"email,omitempty" db:"email"`
	Phone        *string `json:"phone,omitempty" db:"phone"`
	CRMSource    *string `json:"crm_source,omitempty" db:"crm_source"`
	CRMID        *string `json:"crm_id,omitempty" db:"crm_id"`
}

type CreateClientInput struct {
	CompanyName  string  `json:"company_name" validate:"required"`
	Industry     *string `json:"industry,omitempty"`
	Address      *string `json:"address,omitempty"`
	City         *string `json:"city,omitempty"`
	State        *string `json:"state,omitempty"`
	PostalCode   *string `json:"postal_code,omitempty"`
	ContactName  *string `json:"contact_name,omitempty"`
	ContactTitle *string `json:"contact_title,omitempty"`
	Email        *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone        *string `json:"phone,omitempty"`
	CRMSource    *string `json:"crm_source,omitempty"`
	CRMID        *string `json:"crm_id,omitempty"`
}

type UpdateClientInput struct {
	CompanyName  *string `json:"company_name,omitempty" validate:"omitempty,min=1"`
	Industry     *string `json:"industry,omitempty"`
	Address      *string `json:"address,omitempty"`
	City         *string `json:"city,omitempty"`
	State        *string `json:"state,omitempty"`
	PostalCode   *string `json:"postal_code,omitempty"`
	ContactName  *string `json:"contact_name,omitempty"`
	ContactTitle *string `json:"contact_title,omitempty"`
	Email        *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone        *string `json:"phone,omitempty"`
}

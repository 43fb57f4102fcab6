package document

import (
	"bytes"
	"html/template"
	"sort"

	"github.com/propelhq/propel-be/internal/domain"
)

// sectionFallback is rendered for any template section the user never
// filled in. Export must not fail on incomplete proposals.
const sectionFallback = "Content to be provided."

const termsFallback = "Standard terms and conditions apply to this proposal."

const termsSectionTitle = "Terms & Conditions"

var proposalTemplate = template.Must(template.New("proposal").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 800px; margin: 0 auto; padding: 20px; }
    .header { text-align: center; margin-bottom: 30px; padding-bottom: 20px; border-bottom: 1px solid #eee; }
    .proposal-title { font-size: 24px; font-weight: bold; margin-bottom: 10px; color: #2563eb; }
    .proposal-meta { display: flex; justify-content: space-between; margin: 20px 0; }
    .client-info, .company-info { width: 48%; }
    .section { margin-bottom: 30px; }
    .section-title { font-size: 18px; font-weight: bold; margin-bottom: 15px; color: #2563eb; }
    table { width: 100%; border-collapse: collapse; margin-bottom: 20px; }
    th, td { border: 1px solid #ddd; padding: 10px; text-align: left; }
    th { background-color: #f2f7ff; }
    .amount { font-size: 18px; font-weight: bold; }
    .footer { margin-top: 50px; padding-top: 20px; border-top: 1px solid #eee; font-size: 14px; color: #666; }
  </style>
</head>
<body>
  <div class="header">
    <div class="proposal-title">{{.Title}}</div>
    <div>Proposal #{{.ID}} | {{.Date}} | {{.Status}}</div>
  </div>

  <div class="proposal-meta">
    <div class="client-info">
      <h3>Client</h3>
      <div>{{.ClientName}}</div>
      <div>{{.ClientAddress}}</div>
      <div>{{.ContactName}}</div>
      <div>{{.ClientEmail}}</div>
      <div>{{.ClientPhone}}</div>
    </div>

    <div class="company-info">
      <h3>Our Company</h3>
      <div>{{.CompanyName}}</div>
      <div>{{.CompanyAddress}}</div>
      <div>{{.CompanyCity}}</div>
      <div>{{.CompanyEmail}}</div>
      <div>{{.CompanyPhone}}</div>
    </div>
  </div>

{{range .Sections}}  <div class="section">
    <div class="section-title">{{.Title}}</div>
    <p>{{.Body}}</p>
  </div>
{{end}}
  <div class="section">
    <div class="section-title">Pricing</div>
    <p>Total Amount: <span class="amount">{{.Amount}}</span></p>
{{if .PricingItems}}    <table>
      <tr><th>Description</th><th>Quantity</th><th>Unit Price</th></tr>
{{range .PricingItems}}      <tr><td>{{.Description}}</td><td>{{.Quantity}}</td><td>{{.UnitPrice}}</td></tr>
{{end}}    </table>
{{end}}{{if .PricingNotes}}    <p>{{.PricingNotes}}</p>
{{end}}  </div>

  <div class="section">
    <div class="section-title">Terms &amp; Conditions</div>
    <p>{{.Terms}}</p>
  </div>

  <div class="footer">
    <p>Thank you for considering our proposal. We look forward to the opportunity to work with you.</p>
    <p>This proposal is valid for 30 days from the date of issue.</p>
  </div>
</body>
</html>
`))

type renderedSection struct {
	Title string
	Body  string
}

type documentData struct {
	ID     int64
	Title  string
	Date   string
	Status string

	ClientName    string
	ClientAddress string
	ContactName   string
	ClientEmail   string
	ClientPhone   string

	CompanyName    string
	CompanyAddress string
	CompanyCity    string
	CompanyEmail   string
	CompanyPhone   string

	Sections     []renderedSection
	Amount       string
	PricingItems []domain.PricingItem
	PricingNotes string
	Terms        string
}

// sectionTitles resolves the ordered section list: the template's skeleton
// when present, otherwise the proposal's own section keys in sorted order.
func sectionTitles(proposal *domain.Proposal, tmpl *domain.Template) []string {
	if tmpl != nil && len(tmpl.Content.Sections) > 0 {
		titles := make([]string, 0, len(tmpl.Content.Sections))
		for _, s := range tmpl.Content.Sections {
			if s.Title == termsSectionTitle {
				continue
			}
			titles = append(titles, s.Title)
		}
		return titles
	}

	if proposal.Content == nil || len(proposal.Content.Sections) == 0 {
		return nil
	}
	titles := make([]string, 0, len(proposal.Content.Sections))
	for title := range proposal.Content.Sections {
		if title == termsSectionTitle {
			continue
		}
		titles = append(titles, title)
	}
	sort.Strings(titles)
	return titles
}

func (s *service) buildDocumentData(proposal *domain.Proposal, client *domain.Client, tmpl *domain.Template) documentData {
	data := documentData{
		ID:     proposal.ID,
		Title:  proposal.Title,
		Date:   proposal.CreatedAt.Format("Jan 2, 2006"),
		Status: string(proposal.Status),

		ClientName: "Client",

		CompanyName:    s.cfg.CompanyName,
		CompanyAddress: s.cfg.CompanyAddress,
		CompanyCity:    s.cfg.CompanyCity,
		CompanyEmail:   s.cfg.CompanyEmail,
		CompanyPhone:   s.cfg.CompanyPhone,

		Amount: "TBD",
		Terms:  termsFallback,
	}

	if client != nil {
		data.ClientName = client.CompanyName
		data.ClientAddress = joinNonEmpty(client.Address, client.City, client.State, client.PostalCode)
		data.ContactName = deref(client.ContactName)
		data.ClientEmail = deref(client.Email)
		data.ClientPhone = deref(client.Phone)
	}

	if proposal.Amount != nil && *proposal.Amount != "" {
		data.Amount = "$" + *proposal.Amount
	}

	for _, title := range sectionTitles(proposal, tmpl) {
		data.Sections = append(data.Sections, renderedSection{
			Title: title,
			Body:  proposal.Content.Section(title, sectionFallback),
		})
	}

	data.Terms = proposal.Content.Section(termsSectionTitle, termsFallback)

	if proposal.Content != nil && proposal.Content.Pricing != nil {
		data.PricingItems = proposal.Content.Pricing.Items
		data.PricingNotes = proposal.Content.Pricing.Notes
	}

	return data
}

func (s *service) renderHTML(proposal *domain.Proposal, client *domain.Client, tmpl *domain.Template) ([]byte, error) {
	data := s.buildDocumentData(proposal, client, tmpl)

	var buf bytes.Buffer
	if err := proposalTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func joinNonEmpty(parts ...*string) string {
	out := ""
	for _, p := range parts {
		if p == nil || *p == "" {
			continue
		}
		if out != "" {
			out += ", "
		}
		out += *p
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

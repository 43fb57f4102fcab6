package document

import (
	"bytes"
	"fmt"

	godocx "github.com/fumiama/go-docx"
)

// renderDOCX rebuilds the document from field values rather than converting
// the HTML, so the result stays editable in a word processor.
func renderDOCX(data documentData) ([]byte, error) {
	doc := godocx.New().WithDefaultTheme()

	title := doc.AddParagraph().Justification("center")
	title.AddText(data.Title).Size("36").Bold().Color("2563EB")

	meta := doc.AddParagraph().Justification("center")
	meta.AddText(fmt.Sprintf("Proposal #%d | %s | %s", data.ID, data.Date, data.Status))

	doc.AddParagraph()

	table := doc.AddTable(2, 2, 9000, nil)
	table.TableRows[0].TableCells[0].AddParagraph().AddText("Client Information").Bold()
	table.TableRows[0].TableCells[1].AddParagraph().AddText("Our Company").Bold()

	clientCell := table.TableRows[1].TableCells[0]
	for _, line := range []string{data.ClientName, data.ClientAddress, data.ContactName, data.ClientEmail, data.ClientPhone} {
		if line != "" {
			clientCell.AddParagraph().AddText(line)
		}
	}

	companyCell := table.TableRows[1].TableCells[1]
	for _, line := range []string{data.CompanyName, data.CompanyAddress, data.CompanyCity, data.CompanyEmail, data.CompanyPhone} {
		if line != "" {
			companyCell.AddParagraph().AddText(line)
		}
	}

	for _, section := range data.Sections {
		heading := doc.AddParagraph()
		heading.AddText(section.Title).Size("28").Bold().Color("2563EB")
		doc.AddParagraph().AddText(section.Body)
	}

	pricing := doc.AddParagraph()
	pricing.AddText("Pricing").Size("28").Bold().Color("2563EB")
	doc.AddParagraph().AddText("Total Amount: " + data.Amount)
	for _, item := range data.PricingItems {
		doc.AddParagraph().AddText(fmt.Sprintf("%s: %d x %s", item.Description, item.Quantity, item.UnitPrice))
	}
	if data.PricingNotes != "" {
		doc.AddParagraph().AddText(data.PricingNotes)
	}

	terms := doc.AddParagraph()
	terms.AddText("Terms & Conditions").Size("28").Bold().Color("2563EB")
	doc.AddParagraph().AddText(data.Terms)

	doc.AddParagraph()
	doc.AddParagraph().AddText("Thank you for considering our proposal. We look forward to the opportunity to work with you.")
	doc.AddParagraph().AddText("This proposal is valid for 30 days from the date of issue.")

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

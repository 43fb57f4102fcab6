package document

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/propelhq/propel-be/internal/config"
	"github.com/propelhq/propel-be/internal/domain"
)

// Service turns a stored proposal into an exportable artifact. One canonical
// HTML layout backs all three formats; DOCX is rebuilt from the same field
// values instead of parsing the HTML.
type Service interface {
	Export(ctx context.Context, proposal *domain.Proposal, format domain.ExportFormat, client *domain.Client, tmpl *domain.Template) (*domain.ExportResult, error)
	RenderHTML(proposal *domain.Proposal, client *domain.Client, tmpl *domain.Template) ([]byte, error)
}

type service struct {
	cfg     *config.Config
	printer PDFPrinter
}

func NewService(cfg *config.Config, printer PDFPrinter) Service {
	return &service{cfg: cfg, printer: printer}
}

func (s *service) Export(ctx context.Context, proposal *domain.Proposal, format domain.ExportFormat, client *domain.Client, tmpl *domain.Template) (*domain.ExportResult, error) {
	var buffer []byte
	var err error

	switch format {
	case domain.FormatHTML:
		buffer, err = s.renderHTML(proposal, client, tmpl)
	case domain.FormatPDF:
		var html []byte
		html, err = s.renderHTML(proposal, client, tmpl)
		if err == nil {
			buffer, err = s.printer.PrintHTML(ctx, string(html))
		}
	case domain.FormatDOCX:
		buffer, err = renderDOCX(s.buildDocumentData(proposal, client, tmpl))
	default:
		return nil, fmt.Errorf("unsupported export format: %q", format)
	}
	if err != nil {
		return nil, err
	}

	return &domain.ExportResult{
		Buffer:      buffer,
		Filename:    Filename(proposal.ID, proposal.Title, format),
		ContentType: format.ContentType(),
	}, nil
}

func (s *service) RenderHTML(proposal *domain.Proposal, client *domain.Client, tmpl *domain.Template) ([]byte, error) {
	return s.renderHTML(proposal, client, tmpl)
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Filename derives a deterministic name: runs of non-alphanumerics collapse
// to a single underscore and the title is lower-cased.
func Filename(id int64, title string, format domain.ExportFormat) string {
	slug := nonAlnum.ReplaceAllString(strings.ToLower(title), "_")
	slug = strings.Trim(slug, "_")
	return fmt.Sprintf("proposal_%d_%s.%s", id, slug, format)
}

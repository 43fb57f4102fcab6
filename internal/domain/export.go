package domain

import "fmt"

type ExportFormat string

const (
	FormatPDF  ExportFormat = "pdf"
	FormatDOCX ExportFormat = "docx"
	FormatHTML ExportFormat = "html"
)

func ParseExportFormat(s string) (ExportFormat, error) {
	switch ExportFormat(s) {
	case FormatPDF, FormatDOCX, FormatHTML:
		return ExportFormat(s), nil
	}
	return "", fmt.Errorf("unsupported export format: %q", s)
}

func (f ExportFormat) ContentType() string {
	switch f {
	case FormatPDF:
		return "application/pdf"
	case FormatDOCX:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return "text/html; charset=utf-8"
	}
}

type ExportResult struct {
	Buffer      []byte
	Filename    string
	ContentType string
}

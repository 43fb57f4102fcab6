package document

import (
	"context"
	"errors"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// PDFPrinter converts a rendered HTML document to PDF bytes. The headless
// browser dependency sits behind this interface so tests can stub it.
type PDFPrinter interface {
	PrintHTML(ctx context.Context, html string) ([]byte, error)
}

type chromePrinter struct {
	timeout time.Duration
}

// NewChromePrinter prints through a headless Chrome instance at A4 size with
// fixed margins, matching the on-screen layout of the HTML export.
func NewChromePrinter(timeout time.Duration) PDFPrinter {
	return &chromePrinter{timeout: timeout}
}

func (p *chromePrinter) PrintHTML(ctx context.Context, html string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	browserCtx, cancelBrowser := chromedp.NewContext(ctx)
	defer cancelBrowser()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithMarginTop(0.3).
				WithMarginBottom(0.3).
				WithMarginLeft(0.3).
				WithMarginRight(0.3).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdf, nil
}

type disabledPrinter struct{}

// NewDisabledPrinter is used where no Chrome binary is available; PDF export
// fails cleanly while HTML and DOCX keep working.
func NewDisabledPrinter() PDFPrinter {
	return disabledPrinter{}
}

func (disabledPrinter) PrintHTML(context.Context, string) ([]byte, error) {
	return nil, errors.New("pdf rendering is disabled")
}

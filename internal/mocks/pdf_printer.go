package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type PDFPrinter struct {
	mock.Mock
}

func (m *PDFPrinter) PrintHTML(ctx context.Context, html string) ([]byte, error) {
	args := m.Called(ctx, html)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

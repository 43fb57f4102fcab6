package handler

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// anyCtx matches whatever context fiber hands the service layer.
var anyCtx = mock.MatchedBy(func(ctx context.Context) bool { return true })

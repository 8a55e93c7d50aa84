package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"profit/internal/domain"
	"profit/pkg/errcodes"
)

func TestAppError(t *testing.T) {
	rq := require.New(t)

	sentinel := domain.NewError(errcodes.PercentageNotFound, "percentage not found")
	cause := errors.New("no percentage in response")

	wrapped := fmt.Errorf("resolve: %w", domain.WrapError(cause, errcodes.PercentageNotFound, "percentage not found"))

	rq.ErrorIs(wrapped, sentinel)
	rq.ErrorIs(wrapped, cause)
	rq.NotErrorIs(wrapped, domain.NewError(errcodes.InvalidPaging, "invalid paging"))
	rq.True(domain.IsAppError(wrapped))
	rq.Equal("resolve: percentage not found: no percentage in response", wrapped.Error())

	code, ok := domain.GetCode(wrapped)
	rq.True(ok)
	rq.Equal(errcodes.PercentageNotFound, code)

	_, ok = domain.GetCode(cause)
	rq.False(ok)
	rq.False(domain.IsAppError(cause))
}

package profit_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"profit/internal/domain/service/profit"
)

func TestSumWithPercentage(t *testing.T) {
	testCases := []struct {
		name       string
		x, y, pct  int
		wantString string
	}{
		{name: "Plain", x: 10, y: 5, pct: 20, wantString: "18"},
		{name: "Zero percentage", x: 10, y: 5, pct: 0, wantString: "15"},
		{name: "Fraction", x: 1, y: 2, pct: 15, wantString: "3.45"},
		{name: "Negative operand", x: -10, y: 5, pct: 10, wantString: "-5.5"},
		{name: "Full markup", x: 50, y: 50, pct: 100, wantString: "200"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			got := profit.SumWithPercentage(tc.x, tc.y, tc.pct)

			rq.True(decimal.RequireFromString(tc.wantString).Equal(got), "want %s, got %s", tc.wantString, got)
		})
	}
}

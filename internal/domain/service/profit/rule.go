package profit

import "github.com/shopspring/decimal"

// Rule вычисляет total по операндам и проценту.
type Rule func(operatorX, operatorY, percentage int) decimal.Decimal

var hundred = decimal.NewFromInt(100) //nolint:gochecknoglobals

// SumWithPercentage: (x + y) + (x + y) * percentage / 100.
func SumWithPercentage(operatorX, operatorY, percentage int) decimal.Decimal {
	sum := decimal.NewFromInt(int64(operatorX)).Add(decimal.NewFromInt(int64(operatorY)))

	return sum.Add(sum.Mul(decimal.NewFromInt(int64(percentage))).Div(hundred))
}

package server

import (
	"profit/internal/domain/entity"
	"profit/pkg/lox"
	"profit/pkg/rest"
)

func newRESTProfit(profit entity.Profit) rest.Profit {
	return rest.Profit{
		ID:        profit.ID,
		OperatorX: profit.OperatorX,
		OperatorY: profit.OperatorY,
		Total:     profit.Total.InexactFloat64(),
	}
}

func newRESTProfits(profits []entity.Profit) []rest.Profit {
	return lox.Map(profits, newRESTProfit)
}

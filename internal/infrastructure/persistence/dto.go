package persistence

import (
	"time"

	"github.com/shopspring/decimal"

	"profit/internal/domain/entity"
)

// profitSchema — внутренняя структура для маппинга строки таблицы profits.
type profitSchema struct {
	ID         int64           `db:"id"`
	OperatorX  int             `db:"operator_x"`
	OperatorY  int             `db:"operator_y"`
	Percentage int             `db:"percentage"`
	Total      decimal.Decimal `db:"total"`
	CreatedAt  time.Time       `db:"created_at"`
}

func fromProfit(e *entity.Profit) *profitSchema {
	return &profitSchema{
		ID:         e.ID,
		OperatorX:  e.OperatorX,
		OperatorY:  e.OperatorY,
		Percentage: e.Percentage,
		Total:      e.Total,
		CreatedAt:  e.CreatedAt,
	}
}

func (s *profitSchema) toDomain() entity.Profit {
	return entity.Profit{
		ID:         s.ID,
		OperatorX:  s.OperatorX,
		OperatorY:  s.OperatorY,
		Percentage: s.Percentage,
		Total:      s.Total,
		CreatedAt:  s.CreatedAt,
	}
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Profit — результат одного расчёта. ID и CreatedAt заполняются при сохранении.
type Profit struct {
	ID         int64
	OperatorX  int
	OperatorY  int
	Percentage int
	Total      decimal.Decimal
	CreatedAt  time.Time
}

// IsPersisted сообщает, присвоен ли записи идентификатор базы.
func (p Profit) IsPersisted() bool {
	return p.ID != 0
}

// Данный файл должен быть сгенерирован из openapi спецификации и называться types.gen.go
package rest

// ProfitCalculateRequest Запрос на расчёт
type ProfitCalculateRequest struct {
	OperatorX *int `json:"operatorX" validate:"required"`
	OperatorY *int `json:"operatorY" validate:"required"`
}

// Profit Результат расчёта; процент наружу не отдаётся
type Profit struct {
	ID        int64   `json:"id"`
	OperatorX int     `json:"operatorX"`
	OperatorY int     `json:"operatorY"`
	Total     float64 `json:"total"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке (для отображения в UI в будущем)
	Message string `json:"message"`

	// SupportID Идентификатор для поддержки (trace id)
	SupportID string `json:"supportId"`
}

// ErrorCode Код ошибки
type ErrorCode string

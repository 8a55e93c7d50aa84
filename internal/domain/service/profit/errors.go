package profit

import (
	"errors"

	"profit/internal/domain"
	"profit/pkg/errcodes"
)

var (
	// ErrNoPercentage возвращается провайдером, когда в ответе нет значения процента.
	ErrNoPercentage = errors.New("percentage provider returned no percentage")

	// ErrPercentageNotFound — доменная ошибка для errors.Is; её отдаёт Resolve.
	ErrPercentageNotFound = domain.NewError(errcodes.PercentageNotFound, "percentage not found")
)

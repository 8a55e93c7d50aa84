package value

import (
	"fmt"
	"math"

	"git.appkode.ru/pub/go/failure"

	"profit/pkg/errcodes"
)

const (
	DefaultPageNo   = 0
	DefaultPageSize = 10
	MaxPageSize     = 100

	// MaxPageNo не даёт PageNo*MaxPageSize переполнить int.
	MaxPageNo = math.MaxInt / MaxPageSize
)

type Paging struct {
	PageNo   int
	PageSize int
}

func DefaultPaging() Paging {
	return Paging{
		PageNo:   DefaultPageNo,
		PageSize: DefaultPageSize,
	}
}

// NewPaging проверяет границы страницы: 0 <= pageNo <= MaxPageNo, 1 <= pageSize <= MaxPageSize.
func NewPaging(pageNo, pageSize int) (Paging, error) {
	if pageNo < 0 {
		return Paging{}, failure.NewInvalidArgumentError(
			fmt.Sprintf("pageNo must be >= 0, got %d", pageNo),
			failure.WithCode(errcodes.InvalidPaging),
			failure.WithDescription("pageNo must not be negative"),
		)
	}

	if pageNo > MaxPageNo {
		return Paging{}, failure.NewInvalidArgumentError(
			fmt.Sprintf("pageNo must be <= %d, got %d", MaxPageNo, pageNo),
			failure.WithCode(errcodes.InvalidPaging),
			failure.WithDescription(fmt.Sprintf("pageNo must not exceed %d", MaxPageNo)),
		)
	}

	if pageSize < 1 || pageSize > MaxPageSize {
		return Paging{}, failure.NewInvalidArgumentError(
			fmt.Sprintf("pageSize must be in [1, %d], got %d", MaxPageSize, pageSize),
			failure.WithCode(errcodes.InvalidPaging),
			failure.WithDescription(fmt.Sprintf("pageSize must be between 1 and %d", MaxPageSize)),
		)
	}

	return Paging{PageNo: pageNo, PageSize: pageSize}, nil
}

func (p Paging) Limit() int {
	return p.PageSize
}

func (p Paging) Offset() int {
	return p.PageNo * p.PageSize
}

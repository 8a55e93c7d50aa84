package value_test

import (
	"math"
	"testing"

	"git.appkode.ru/pub/go/failure"
	"github.com/stretchr/testify/require"

	"profit/internal/domain/value"
	"profit/pkg/errcodes"
)

func TestNewPaging(t *testing.T) {
	testCases := []struct {
		name     string
		pageNo   int
		pageSize int
		offset   int
		wantErr  bool
	}{
		{name: "First page", pageNo: 0, pageSize: 10, offset: 0},
		{name: "Third page", pageNo: 2, pageSize: 25, offset: 50},
		{name: "Max page size", pageNo: 1, pageSize: value.MaxPageSize, offset: value.MaxPageSize},
		{name: "Last page", pageNo: value.MaxPageNo, pageSize: value.MaxPageSize, offset: value.MaxPageNo * value.MaxPageSize},
		{name: "Negative page", pageNo: -1, pageSize: 10, wantErr: true},
		{name: "Page beyond offset range", pageNo: value.MaxPageNo + 1, pageSize: 10, wantErr: true},
		{name: "Max int page", pageNo: math.MaxInt, pageSize: 10, wantErr: true},
		{name: "Zero page size", pageNo: 0, pageSize: 0, wantErr: true},
		{name: "Page size too big", pageNo: 0, pageSize: value.MaxPageSize + 1, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			paging, err := value.NewPaging(tc.pageNo, tc.pageSize)
			if tc.wantErr {
				rq.Error(err)
				rq.True(failure.IsInvalidArgumentError(err))
				rq.Equal(errcodes.InvalidPaging, failure.Code(err))

				return
			}

			rq.NoError(err)
			rq.Equal(tc.pageSize, paging.Limit())
			rq.Equal(tc.offset, paging.Offset())
		})
	}
}

func TestDefaultPaging(t *testing.T) {
	rq := require.New(t)

	paging := value.DefaultPaging()
	rq.Equal(0, paging.PageNo)
	rq.Equal(10, paging.PageSize)
}

package profit_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"profit/internal/domain/entity"
	"profit/internal/domain/service/profit"
	"profit/internal/domain/value"
)

func newRepo() *profit.ProfitRepositoryMock {
	var nextID int64

	return &profit.ProfitRepositoryMock{
		SaveProfitFunc: func(_ context.Context, p *entity.Profit) error {
			nextID++
			p.ID = nextID
			p.CreatedAt = time.Now()

			return nil
		},
	}
}

func TestCalculateProfitCacheHit(t *testing.T) {
	rq := require.New(t)

	cache, _ := newMapCache(map[string]string{testCacheKey: "20"})
	provider := constProvider(99)
	repo := newRepo()

	svc := profit.NewService(profit.NewPercentageResolver(provider, cache), repo)

	start := time.Now()

	p, err := svc.CalculateProfit(context.Background(), 10, 5)
	rq.NoError(err)
	rq.Less(time.Since(start), time.Second)

	rq.Equal(int64(1), p.ID)
	rq.Equal(10, p.OperatorX)
	rq.Equal(5, p.OperatorY)
	rq.Equal(20, p.Percentage)
	rq.True(decimal.NewFromInt(18).Equal(p.Total), p.Total.String())
	rq.True(p.IsPersisted())

	rq.Empty(provider.GetPercentageCalls())
	rq.Len(repo.SaveProfitCalls(), 1)
}

func TestCalculateProfitCacheMiss(t *testing.T) {
	rq := require.New(t)

	const delay = 100 * time.Millisecond

	cache, store := newMapCache(nil)
	provider := constProvider(15)
	repo := newRepo()

	svc := profit.NewService(
		profit.NewPercentageResolver(provider, cache, profit.WithFetchDelay(delay)),
		repo,
	)

	start := time.Now()

	p, err := svc.CalculateProfit(context.Background(), 10, 5)
	rq.NoError(err)

	elapsed := time.Since(start)
	rq.GreaterOrEqual(elapsed, delay)
	rq.Less(elapsed, delay+time.Second)

	rq.Equal(15, p.Percentage)
	rq.True(decimal.RequireFromString("17.25").Equal(p.Total), p.Total.String())
	rq.Len(repo.SaveProfitCalls(), 1)
	rq.Equal("15", store[testCacheKey])
	rq.Len(provider.GetPercentageCalls(), 1)
}

func TestCalculateProfitPercentageNotFound(t *testing.T) {
	rq := require.New(t)

	cache, store := newMapCache(nil)
	provider := &profit.PercentageProviderMock{
		GetPercentageFunc: func(context.Context) (int, error) {
			return 0, profit.ErrNoPercentage
		},
	}
	repo := newRepo()

	svc := profit.NewService(profit.NewPercentageResolver(provider, cache), repo)

	_, err := svc.CalculateProfit(context.Background(), 1, 2)
	rq.ErrorIs(err, profit.ErrPercentageNotFound)
	rq.Empty(repo.SaveProfitCalls())
	rq.Empty(store)
}

func TestCalculateProfitSaveError(t *testing.T) {
	rq := require.New(t)

	errDB := errors.New("connection reset")

	cache, _ := newMapCache(map[string]string{testCacheKey: "10"})
	repo := &profit.ProfitRepositoryMock{
		SaveProfitFunc: func(context.Context, *entity.Profit) error {
			return errDB
		},
	}

	svc := profit.NewService(profit.NewPercentageResolver(constProvider(1), cache), repo)

	_, err := svc.CalculateProfit(context.Background(), 1, 2)
	rq.ErrorIs(err, errDB)
	rq.ErrorContains(err, "repo.SaveProfit")
}

func TestCalculateProfitWithRule(t *testing.T) {
	rq := require.New(t)

	cache, _ := newMapCache(map[string]string{testCacheKey: "50"})

	svc := profit.NewService(profit.NewPercentageResolver(constProvider(1), cache), newRepo()).
		WithRule(func(x, y, pct int) decimal.Decimal {
			return decimal.NewFromInt(int64(x * y * pct))
		})

	p, err := svc.CalculateProfit(context.Background(), 2, 3)
	rq.NoError(err)
	rq.True(decimal.NewFromInt(300).Equal(p.Total))
}

func TestGetProfits(t *testing.T) {
	rq := require.New(t)

	stored := []entity.Profit{
		{ID: 1, OperatorX: 10, OperatorY: 5, Percentage: 20, Total: decimal.NewFromInt(18)},
		{ID: 2, OperatorX: 1, OperatorY: 1, Percentage: 0, Total: decimal.NewFromInt(2)},
	}

	repo := &profit.ProfitRepositoryMock{
		GetProfitsFunc: func(_ context.Context, pageNo, pageSize int) ([]entity.Profit, error) {
			return stored, nil
		},
	}

	svc := profit.NewService(nil, repo)

	paging, err := value.NewPaging(3, 10)
	rq.NoError(err)

	profits, err := svc.GetProfits(context.Background(), paging)
	rq.NoError(err)
	rq.Equal(stored, profits)

	calls := repo.GetProfitsCalls()
	rq.Len(calls, 1)
	rq.Equal(3, calls[0].PageNo)
	rq.Equal(10, calls[0].PageSize)

	repo.GetProfitsFunc = func(context.Context, int, int) ([]entity.Profit, error) {
		return nil, errors.New("boom")
	}

	_, err = svc.GetProfits(context.Background(), value.DefaultPaging())
	rq.ErrorContains(err, "repo.GetProfits: boom")
}

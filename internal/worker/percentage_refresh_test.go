package worker_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"profit/internal/domain/service/profit"
	"profit/internal/worker"
)

func TestPercentageRefresher(t *testing.T) {
	rq := require.New(t)

	cached := map[string]string{"percentage:string": "10"}
	cache := &profit.PercentageCacheMock{
		GetFunc: func(_ context.Context, key string) (string, bool, error) {
			v, ok := cached[key]
			return v, ok, nil
		},
		SaveFunc: func(_ context.Context, key, value string) error {
			cached[key] = value
			return nil
		},
	}

	percentage := 30
	provider := &profit.PercentageProviderMock{
		GetPercentageFunc: func(context.Context) (int, error) {
			if percentage < 0 {
				return 0, profit.ErrNoPercentage
			}
			return percentage, nil
		},
	}

	refresher := worker.NewPercentageRefresher(profit.NewPercentageResolver(provider, cache))

	h := refresher.Handler()
	rq.Equal(worker.TaskTypePercentageRefresh, h.Pattern)

	task := worker.NewPercentageRefreshTask()
	rq.Equal(worker.TaskTypePercentageRefresh, task.Type())

	rq.NoError(h.Handle(context.Background(), task))
	rq.Equal("30", cached["percentage:string"])

	percentage = -1

	err := h.Handle(context.Background(), task)
	rq.ErrorIs(err, profit.ErrPercentageNotFound)
	rq.Equal("30", cached["percentage:string"])

	periodic := refresher.PeriodicTask("@every 30m", "default")
	rq.Equal("@every 30m", periodic.Cronspec)
	rq.Equal(worker.TaskTypePercentageRefresh, periodic.Task.Type())
	rq.Len(periodic.Options, 1)
}

package worker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"profit/pkg/application/modules"
	"profit/pkg/logx"
)

const TaskTypePercentageRefresh = "percentage:refresh"

type percentageRefresher interface {
	Refresh(ctx context.Context) (int, error)
}

// PercentageRefresher прогревает кэш процента, чтобы запросы шли по быстрой ветке.
type PercentageRefresher struct {
	resolver percentageRefresher
}

func NewPercentageRefresher(resolver percentageRefresher) *PercentageRefresher {
	return &PercentageRefresher{resolver: resolver}
}

// NewPercentageRefreshTask — задача без payload; повторов нет, следующий тик
// планировщика всё равно обновит кэш.
func NewPercentageRefreshTask() *asynq.Task {
	return asynq.NewTask(TaskTypePercentageRefresh, nil, asynq.MaxRetry(0))
}

func (p *PercentageRefresher) Handle(ctx context.Context, task *asynq.Task) error {
	percentage, err := p.resolver.Refresh(ctx)
	if err != nil {
		return fmt.Errorf("resolver.Refresh: %w", err)
	}

	logger(ctx).Info(
		"percentage refreshed",
		slog.String(logx.FieldTaskType, task.Type()),
		slog.Int(logx.FieldPercentage, percentage),
	)

	return nil
}

func (p *PercentageRefresher) Handler() modules.AsynqHandler {
	return modules.AsynqHandler{
		Pattern: TaskTypePercentageRefresh,
		Handle:  p.Handle,
	}
}

func (p *PercentageRefresher) PeriodicTask(cronspec, queue string) modules.AsynqPeriodicTask {
	return modules.AsynqPeriodicTask{
		Cronspec: cronspec,
		Task:     NewPercentageRefreshTask(),
		Options:  []asynq.Option{asynq.Queue(queue)},
	}
}

package profit

import (
	"context"
	"fmt"
	"log/slog"

	"profit/internal/domain/entity"
	"profit/internal/domain/value"
	"profit/pkg/logx"
)

type ProfitRepository interface {
	SaveProfit(ctx context.Context, profit *entity.Profit) error
	GetProfits(ctx context.Context, pageNo, pageSize int) ([]entity.Profit, error)
}

type percentageResolver interface {
	Resolve(ctx context.Context) (int, error)
}

type Service struct {
	resolver percentageResolver
	repo     ProfitRepository
	rule     Rule
}

func NewService(resolver percentageResolver, repo ProfitRepository) *Service {
	return &Service{
		resolver: resolver,
		repo:     repo,
		rule:     SumWithPercentage,
	}
}

func (s *Service) WithRule(rule Rule) *Service {
	s.rule = rule
	return s
}

// CalculateProfit считает и сохраняет Profit. Сохранение не отменяется
// вместе с запросом: процент уже получен, запись должна появиться.
func (s *Service) CalculateProfit(ctx context.Context, operatorX, operatorY int) (entity.Profit, error) {
	percentage, err := s.resolver.Resolve(ctx)
	if err != nil {
		return entity.Profit{}, fmt.Errorf("resolver.Resolve: %w", err)
	}

	profit := entity.Profit{
		OperatorX:  operatorX,
		OperatorY:  operatorY,
		Percentage: percentage,
		Total:      s.rule(operatorX, operatorY, percentage),
	}

	if err := s.repo.SaveProfit(context.WithoutCancel(ctx), &profit); err != nil {
		return entity.Profit{}, fmt.Errorf("repo.SaveProfit: %w", err)
	}

	logger(ctx).Info(
		"profit calculated",
		slog.Int64(logx.FieldProfitID, profit.ID),
		slog.Int(logx.FieldPercentage, percentage),
		slog.String("total", profit.Total.String()),
	)

	return profit, nil
}

func (s *Service) GetProfits(ctx context.Context, paging value.Paging) ([]entity.Profit, error) {
	profits, err := s.repo.GetProfits(ctx, paging.PageNo, paging.PageSize)
	if err != nil {
		return nil, fmt.Errorf("repo.GetProfits: %w", err)
	}

	return profits, nil
}

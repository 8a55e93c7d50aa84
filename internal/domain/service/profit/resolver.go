package profit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"profit/internal/domain"
	"profit/pkg/errcodes"
	"profit/pkg/logx"
)

const (
	DefaultCacheKey   = "percentage:string"
	DefaultFetchDelay = 3 * time.Second
)

//go:generate moq -rm -out mocks.gen.go . PercentageProvider:PercentageProviderMock PercentageCache:PercentageCacheMock ProfitRepository:ProfitRepositoryMock
type PercentageProvider interface {
	GetPercentage(ctx context.Context) (int, error)
}

type PercentageCache interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Save(ctx context.Context, key, value string) error
}

type ResolverOption func(*PercentageResolver)

func WithCacheKey(key string) ResolverOption {
	return func(r *PercentageResolver) {
		r.cacheKey = key
	}
}

func WithFetchDelay(delay time.Duration) ResolverOption {
	return func(r *PercentageResolver) {
		r.fetchDelay = delay
	}
}

func WithMetrics(metrics *Metrics) ResolverOption {
	return func(r *PercentageResolver) {
		r.metrics = metrics
	}
}

// PercentageResolver отдаёт текущий процент по схеме cache-aside:
// кэш, при промахе провайдер, задержка, запись в кэш.
type PercentageResolver struct {
	provider   PercentageProvider
	cache      PercentageCache
	cacheKey   string
	fetchDelay time.Duration
	metrics    *Metrics
}

func NewPercentageResolver(
	provider PercentageProvider,
	cache PercentageCache,
	opts ...ResolverOption,
) *PercentageResolver {
	r := &PercentageResolver{
		provider:   provider,
		cache:      cache,
		cacheKey:   DefaultCacheKey,
		fetchDelay: DefaultFetchDelay,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

func (r *PercentageResolver) Resolve(ctx context.Context) (int, error) {
	cached, found, err := r.cache.Get(ctx, r.cacheKey)
	if err != nil {
		return 0, fmt.Errorf("cache.Get: %w", err)
	}

	if found {
		percentage, err := strconv.Atoi(cached)
		if err != nil {
			return 0, domain.WrapError(err, errcodes.InvalidCachedValue, "cached percentage is not an integer")
		}

		r.metrics.cacheHit()

		return percentage, nil
	}

	r.metrics.cacheMiss()

	percentage, err := r.fetch(ctx)
	if err != nil {
		return 0, err
	}

	ctx = r.wait(ctx)

	if err := r.store(ctx, percentage); err != nil {
		return 0, err
	}

	return percentage, nil
}

// Refresh перечитывает процент у провайдера в обход кэша и без задержки.
func (r *PercentageResolver) Refresh(ctx context.Context) (int, error) {
	percentage, err := r.fetch(ctx)
	if err != nil {
		return 0, err
	}

	if err := r.store(ctx, percentage); err != nil {
		return 0, err
	}

	return percentage, nil
}

func (r *PercentageResolver) fetch(ctx context.Context) (int, error) {
	percentage, err := r.provider.GetPercentage(ctx)
	if err != nil {
		r.metrics.providerError()

		if errors.Is(err, ErrNoPercentage) {
			return 0, domain.NewError(errcodes.PercentageNotFound, err.Error())
		}

		return 0, fmt.Errorf("provider.GetPercentage: %w", err)
	}

	return percentage, nil
}

func (r *PercentageResolver) store(ctx context.Context, percentage int) error {
	if err := r.cache.Save(ctx, r.cacheKey, strconv.Itoa(percentage)); err != nil {
		return fmt.Errorf("cache.Save: %w", err)
	}

	logger(ctx).Info(
		"percentage cached",
		slog.String(logx.FieldCacheKey, r.cacheKey),
		slog.Int(logx.FieldPercentage, percentage),
	)

	return nil
}

// wait блокирует на fetchDelay. Отмена контекста только логируется:
// дальше расчёт идёт на контексте без отмены.
func (r *PercentageResolver) wait(ctx context.Context) context.Context {
	if r.fetchDelay <= 0 {
		return ctx
	}

	logger(ctx).Info("long wait begin", slog.Duration("delay", r.fetchDelay))

	timer := time.NewTimer(r.fetchDelay)
	defer timer.Stop()

	select {
	case <-timer.C:
		logger(ctx).Info("long wait end")
		return ctx
	case <-ctx.Done():
		logger(ctx).Warn("long wait interrupted", logx.Error(ctx.Err()))
		return context.WithoutCancel(ctx)
	}
}

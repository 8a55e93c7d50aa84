package persistence

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"profit/internal/domain"
	"profit/internal/domain/entity"
	"profit/internal/domain/value"
	"profit/pkg/errcodes"
)

type ProfitRepository struct {
	db *sqlx.DB
}

func NewProfitRepository(db *sqlx.DB) *ProfitRepository {
	return &ProfitRepository{db: db}
}

// withTx выполняет функцию в транзакции.
func (r *ProfitRepository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to begin transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return domain.WrapError(
				fmt.Errorf("%w; rollback: %v", err, rbErr),
				errcodes.InternalServerError,
				"transaction failed",
			)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to commit")
	}

	return nil
}

// SaveProfit вставляет запись и проставляет в profit id и created_at из базы.
func (r *ProfitRepository) SaveProfit(ctx context.Context, profit *entity.Profit) error {
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO profits (operator_x, operator_y, percentage, total)
			VALUES (:operator_x, :operator_y, :percentage, :total)
			RETURNING id, created_at`

		query, args, err := tx.BindNamed(query, fromProfit(profit))
		if err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to bind profit")
		}

		var inserted profitSchema
		if err := tx.QueryRowxContext(ctx, query, args...).StructScan(&inserted); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to insert profit")
		}

		profit.ID = inserted.ID
		profit.CreatedAt = inserted.CreatedAt

		return nil
	})
}

// GetProfits — страница истории по возрастанию id; pageNo начинается с нуля.
func (r *ProfitRepository) GetProfits(ctx context.Context, pageNo, pageSize int) ([]entity.Profit, error) {
	query := `
		SELECT id, operator_x, operator_y, percentage, total, created_at
		FROM profits
		ORDER BY id ASC
		LIMIT $1 OFFSET $2`

	paging := value.Paging{PageNo: pageNo, PageSize: pageSize}

	var schemas []profitSchema
	if err := r.db.SelectContext(ctx, &schemas, query, paging.Limit(), paging.Offset()); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list profits")
	}

	result := make([]entity.Profit, 0, len(schemas))
	for _, s := range schemas {
		result = append(result, s.toDomain())
	}

	return result, nil
}

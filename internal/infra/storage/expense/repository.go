package expense

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/Turf-BookingService/internal/domain"
	"github.com/m04kA/Turf-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Turf-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с расходами площадки
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория расходов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись о расходе
func (r *Repository) Create(ctx context.Context, expense *domain.Expense) (*domain.Expense, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("expenses").
		Columns("category", "amount", "note", "spent_at", "created_by").
		Values(expense.Category, expense.Amount, expense.Note, expense.SpentAt, expense.CreatedBy).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&expense.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	expense.CreatedAt = createdAt.Time

	return expense, nil
}

// GetWithFilter получает расходы с фильтрацией по периоду и категории
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.ExpensesFilter) ([]*domain.Expense, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"category",
		"amount",
		"note",
		"spent_at",
		"created_by",
		"created_at",
	).
		From("expenses")

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"spent_at": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"spent_at": *filter.EndDate})
	}
	if filter.Category != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"category": *filter.Category})
	}

	selectBuilder = selectBuilder.OrderBy("spent_at DESC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	expenses := make([]*domain.Expense, 0)
	for rows.Next() {
		var expense domain.Expense
		var createdAt sql.NullTime

		err := rows.Scan(
			&expense.ID,
			&expense.Category,
			&expense.Amount,
			&expense.Note,
			&expense.SpentAt,
			&expense.CreatedBy,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetWithFilter - scan row: %v", ErrScanRow, err)
		}

		expense.CreatedAt = createdAt.Time
		expenses = append(expenses, &expense)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - rows error: %v", ErrScanRow, err)
	}

	return expenses, nil
}

// Delete удаляет запись о расходе
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("expenses").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrExpenseNotFound
	}

	return nil
}

package expenses

import (
	"context"

	"github.com/m04kA/Turf-BookingService/internal/domain"
)

// ExpenseRepository интерфейс репозитория расходов
type ExpenseRepository interface {
	Create(ctx context.Context, expense *domain.Expense) (*domain.Expense, error)
	GetWithFilter(ctx context.Context, filter domain.ExpensesFilter) ([]*domain.Expense, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

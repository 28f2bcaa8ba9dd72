package analytics

import (
	"context"

	"github.com/m04kA/Turf-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// ExpenseRepository интерфейс репозитория расходов
type ExpenseRepository interface {
	GetWithFilter(ctx context.Context, filter domain.ExpensesFilter) ([]*domain.Expense, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

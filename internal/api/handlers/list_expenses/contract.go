package list_expenses

import (
	"context"

	"github.com/m04kA/Turf-BookingService/internal/service/expenses"
)

type ExpenseService interface {
	List(ctx context.Context, req *expenses.ListExpensesRequest) (*expenses.ExpenseListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

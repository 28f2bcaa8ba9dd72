package create_expense

import (
	"context"

	"github.com/m04kA/Turf-BookingService/internal/service/expenses"
)

type ExpenseService interface {
	Create(ctx context.Context, req *expenses.CreateExpenseRequest) (*expenses.ExpenseResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

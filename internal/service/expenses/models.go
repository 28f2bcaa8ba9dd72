package expenses

import (
	"time"

	"github.com/m04kA/Turf-BookingService/internal/domain"
)

// CreateExpenseRequest запрос на создание расхода
type CreateExpenseRequest struct {
	Category  string
	Amount    float64
	Note      *string
	SpentAt   time.Time
	CreatedBy int64
}

// ListExpensesRequest запрос на получение списка расходов
type ListExpensesRequest struct {
	StartDate *time.Time
	EndDate   *time.Time
	Category  *string
}

// ExpenseResponse ответ с данными расхода
type ExpenseResponse struct {
	ID        int64     `json:"id"`
	Category  string    `json:"category"`
	Amount    float64   `json:"amount"`
	Note      *string   `json:"note,omitempty"`
	SpentAt   string    `json:"spentAt"` // ISO 8601
	CreatedAt time.Time `json:"createdAt"`
}

// ExpenseListResponse ответ со списком расходов
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Total    float64           `json:"total"`
}

// FromDomainExpense конвертирует domain модель в DTO
func FromDomainExpense(e *domain.Expense) *ExpenseResponse {
	if e == nil {
		return nil
	}
	return &ExpenseResponse{
		ID:        e.ID,
		Category:  e.Category,
		Amount:    e.Amount,
		Note:      e.Note,
		SpentAt:   e.SpentAt.Format(time.RFC3339),
		CreatedAt: e.CreatedAt,
	}
}

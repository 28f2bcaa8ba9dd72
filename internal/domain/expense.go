package domain

import "time"

// Expense represents an operating expense of the turf ground
// (аренда инвентаря, электричество, обслуживание газона и т.п.)
type Expense struct {
	ID        int64
	Category  string
	Amount    float64
	Note      *string
	SpentAt   time.Time
	CreatedBy int64
	CreatedAt time.Time
}

// ExpensesFilter фильтр для получения списка расходов
type ExpensesFilter struct {
	StartDate *time.Time // Начало периода (опционально)
	EndDate   *time.Time // Конец периода (опционально)
	Category  *string    // Фильтр по категории (опционально)
}

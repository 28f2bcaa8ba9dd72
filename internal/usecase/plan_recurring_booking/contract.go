package plan_recurring_booking

import (
	"context"
	"time"

	"github.com/m04kA/Turf-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// FindOverlapping находит неотменённые бронирования, пересекающиеся
	// хотя бы с одним из интервалов (один запрос на весь набор)
	FindOverlapping(ctx context.Context, intervals []domain.Interval) ([]*domain.Booking, error)

	// CreateMany создает серию бронирований одним INSERT
	CreateMany(ctx context.Context, bookings []*domain.Booking) ([]*domain.Booking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

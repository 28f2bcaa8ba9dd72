package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
	StatusNoShow    BookingStatus = "no_show"
)

// Booking represents a single dated reservation of the turf ground.
// Бронирования, созданные одним запросом на регулярное бронирование,
// связаны общим ParentBookingID и несут сериализованное правило повторения.
type Booking struct {
	ID            int64
	CustomerName  string
	CustomerPhone string
	StartTime     time.Time
	EndTime       time.Time
	Charge        float64
	Status        BookingStatus
	Notes         *string

	// Данные серии (заполнены только для регулярных бронирований)
	ParentBookingID  *string
	RecurringDays    *string // сериализованный набор дней недели, например "1,3,5"
	RecurringEndDate *time.Time

	CreatedBy int64 // ID администратора, создавшего бронирование

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Interval returns the [start, end) interval occupied by the booking
func (b *Booking) Interval() Interval {
	return Interval{Start: b.StartTime, End: b.EndTime}
}

// Duration returns the booking duration
func (b *Booking) Duration() time.Duration {
	return b.EndTime.Sub(b.StartTime)
}

// IsActive returns true if the booking occupies its slot
// (учитывается при проверке конфликтов)
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsRecurring returns true if the booking belongs to a recurring series
func (b *Booking) IsRecurring() bool {
	return b.ParentBookingID != nil && *b.ParentBookingID != ""
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed
}

// BookingsFilter фильтр для получения списка бронирований
type BookingsFilter struct {
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	ParentBookingID *string        // Фильтр по серии (опционально)
	IncludeInactive bool           // Включать ли отменённые бронирования
}

// CancelScope область действия отмены серии бронирований
type CancelScope string

const (
	// CancelScopeAll отменяет все бронирования серии
	CancelScopeAll CancelScope = "all"
	// CancelScopeFuture отменяет только бронирования, начинающиеся не раньше текущего момента
	CancelScopeFuture CancelScope = "future"
)

// Valid returns true for a known cancel scope
func (s CancelScope) Valid() bool {
	return s == CancelScopeAll || s == CancelScopeFuture
}

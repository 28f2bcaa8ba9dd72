package domain

// Default configuration values
const (
	// DefaultCharge стоимость одного бронирования по умолчанию
	DefaultCharge = 500.0
)

// Business validation constants
const (
	MinCharge = 0.0 // строго больше нуля
	MaxCharge = 50000.0

	// MaxRecurrenceWeeks максимальный горизонт правила повторения
	MaxRecurrenceWeeks = 26
	// MaxRecurrenceDays горизонт в днях (26 недель)
	MaxRecurrenceDays = MaxRecurrenceWeeks * 7

	// MaxSeriesInstances жёсткий потолок количества бронирований в одной серии
	// Превышение - отказ, а не усечение
	MaxSeriesInstances = 100

	MinCustomerPhoneLength = 7
	MaxCustomerNameLength  = 200
	MaxNotesLength         = 500

	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не занимающих слот
// Используется для фильтрации при проверке конфликтов
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}

// ActiveStatuses список статусов, занимающих слот
var ActiveStatuses = []BookingStatus{
	StatusConfirmed,
	StatusCompleted,
	StatusNoShow,
}

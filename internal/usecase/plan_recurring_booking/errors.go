package plan_recurring_booking

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput возвращается при некорректных данных клиента (имя, телефон, заметки)
	ErrInvalidInput = errors.New("plan_recurring_booking: invalid input data")

	// ErrInvalidInterval возвращается, когда endTime не позже startTime
	// или длительность превышает сутки
	ErrInvalidInterval = errors.New("plan_recurring_booking: invalid time interval")

	// ErrInvalidRecurrenceRule возвращается при пустом/некорректном наборе дней недели
	// или когда дата окончания не позже первого бронирования
	ErrInvalidRecurrenceRule = errors.New("plan_recurring_booking: invalid recurrence rule")

	// ErrRecurrenceRangeTooLarge возвращается, когда дата окончания дальше 26 недель
	ErrRecurrenceRangeTooLarge = errors.New("plan_recurring_booking: recurrence range exceeds 26 weeks")

	// ErrInvalidCharge возвращается при стоимости вне допустимого диапазона
	ErrInvalidCharge = errors.New("plan_recurring_booking: invalid charge")

	// ErrNoValidDates возвращается, когда после фильтрации прошедших дат не осталось кандидатов
	ErrNoValidDates = errors.New("plan_recurring_booking: no valid dates in range")

	// ErrTooManyInstances возвращается при превышении потолка в 100 бронирований
	ErrTooManyInstances = errors.New("plan_recurring_booking: too many instances in series")

	// ErrSlotConflict возвращается, когда кандидаты пересекаются с существующими бронированиями
	ErrSlotConflict = errors.New("plan_recurring_booking: slot conflict")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("plan_recurring_booking: internal error")
)

// ConflictError ошибка конфликта слотов с количеством конфликтующих
// существующих бронирований (без раскрытия их идентификаторов)
type ConflictError struct {
	Count int
}

// Error реализует интерфейс error
func (e *ConflictError) Error() string {
	return fmt.Sprintf("%v: %d existing bookings overlap requested dates", ErrSlotConflict, e.Count)
}

// Unwrap позволяет errors.Is(err, ErrSlotConflict)
func (e *ConflictError) Unwrap() error {
	return ErrSlotConflict
}

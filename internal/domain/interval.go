package domain

import "time"

// Interval полуоткрытый временной интервал [Start, End)
// Общий примитив проверки конфликтов: используется и при одиночном
// бронировании, и при пакетной проверке регулярной серии
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps returns true if the two intervals actually overlap.
// Интервалы считаются полуоткрытыми: бронирование, заканчивающееся
// ровно в момент начала другого, конфликтом НЕ является.
//
// Примеры:
//   - [10:00, 11:00) и [11:00, 12:00) → нет конфликта (граничат)
//   - [10:00, 11:01) и [11:00, 12:00) → конфликт (пересечение 11:00-11:01)
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && i.End.After(other.Start)
}

// IsValid returns true if the interval has positive length
func (i Interval) IsValid() bool {
	return !i.Start.IsZero() && !i.End.IsZero() && i.End.After(i.Start)
}

// Duration returns the interval length
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

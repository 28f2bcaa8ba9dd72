package domain

import (
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidRecurringDays возвращается при некорректном наборе дней недели
var ErrInvalidRecurringDays = errors.New("domain: invalid recurring days")

// RecurringDays набор дней недели правила повторения
// Индексация совпадает с time.Weekday: 0=воскресенье ... 6=суббота
type RecurringDays []time.Weekday

// ParseRecurringDays парсит набор дней из целых чисел с валидацией
// Дубликаты схлопываются, результат отсортирован
func ParseRecurringDays(days []int) (RecurringDays, error) {
	if len(days) == 0 {
		return nil, ErrInvalidRecurringDays
	}

	seen := make(map[time.Weekday]struct{}, len(days))
	for _, d := range days {
		if d < 0 || d > 6 {
			return nil, ErrInvalidRecurringDays
		}
		seen[time.Weekday(d)] = struct{}{}
	}

	result := make(RecurringDays, 0, len(seen))
	for d := range seen {
		result = append(result, d)
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })

	return result, nil
}

// ParseRecurringDaysString парсит сериализованный набор дней вида "1,3,5"
func ParseRecurringDaysString(s string) (RecurringDays, error) {
	if s == "" {
		return nil, ErrInvalidRecurringDays
	}

	parts := strings.Split(s, ",")
	days := make([]int, 0, len(parts))
	for _, p := range parts {
		d, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, ErrInvalidRecurringDays
		}
		days = append(days, d)
	}

	return ParseRecurringDays(days)
}

// Contains returns true if the weekday is part of the rule
func (r RecurringDays) Contains(day time.Weekday) bool {
	for _, d := range r {
		if d == day {
			return true
		}
	}
	return false
}

// Ints возвращает дни как целые числа (для JSON-ответов)
func (r RecurringDays) Ints() []int {
	result := make([]int, len(r))
	for i, d := range r {
		result[i] = int(d)
	}
	return result
}

// String сериализует набор дней в вид "1,3,5" для хранения в БД
func (r RecurringDays) String() string {
	parts := make([]string, len(r))
	for i, d := range r {
		parts[i] = strconv.Itoa(int(d))
	}
	return strings.Join(parts, ",")
}

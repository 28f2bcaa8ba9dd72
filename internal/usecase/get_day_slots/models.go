package get_day_slots

import (
	"time"

	"github.com/m04kA/Turf-BookingService/pkg/types"
)

// Request модель запроса на получение сетки слотов
type Request struct {
	Date time.Time // Дата, на которую запрашивается сетка (без времени)
}

// Response модель ответа с сеткой слотов на день
// Публичный эндпоинт: данные клиентов не раскрываются,
// слот показывается только как свободный/занятый
type Response struct {
	Date  time.Time
	Slots []Slot
}

// Slot один слот сетки площадки
type Slot struct {
	StartTime       types.TimeString // Время начала слота, например "10:00"
	DurationMinutes int              // Длительность слота в минутах
	Available       bool             // Свободен ли слот
}

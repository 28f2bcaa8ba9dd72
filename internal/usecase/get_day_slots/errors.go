package get_day_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_day_slots: invalid input data")

	// ErrInvalidGroundHours возвращается при некорректной конфигурации рабочих часов
	ErrInvalidGroundHours = errors.New("get_day_slots: invalid ground working hours")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_day_slots: internal error")
)

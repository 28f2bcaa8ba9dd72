package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidInterval возвращается, когда endTime не позже startTime
	ErrInvalidInterval = errors.New("create_booking: invalid time interval")

	// ErrInvalidCharge возвращается при стоимости вне допустимого диапазона
	ErrInvalidCharge = errors.New("create_booking: invalid charge")

	// ErrStartTimeInPast возвращается, когда начало бронирования не в будущем
	ErrStartTimeInPast = errors.New("create_booking: start time is in the past")

	// ErrSlotNotAvailable возвращается, когда слот пересекается с существующим бронированием
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

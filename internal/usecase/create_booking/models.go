package create_booking

import "time"

// Request модель запроса на создание одиночного бронирования
type Request struct {
	CustomerName  string
	CustomerPhone string
	StartTime     time.Time
	EndTime       time.Time
	Charge        *float64 // опционально, по умолчанию 500
	Notes         *string
	CreatedBy     int64
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64
	CustomerName  string
	CustomerPhone string
	StartTime     time.Time
	EndTime       time.Time
	Charge        float64
	Status        string
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

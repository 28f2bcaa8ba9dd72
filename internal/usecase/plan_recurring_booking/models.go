package plan_recurring_booking

import "time"

// Request модель запроса на создание серии регулярных бронирований
type Request struct {
	CustomerName     string     // Имя клиента
	CustomerPhone    string     // Телефон клиента
	StartTime        time.Time  // Начало первого бронирования
	EndTime          time.Time  // Конец первого бронирования (задаёт длительность серии)
	RecurringDays    []int      // Дни недели: 0=воскресенье ... 6=суббота
	RecurringEndDate time.Time  // Дата окончания правила повторения
	Charge           *float64   // Стоимость одного бронирования (опционально, по умолчанию 500)
	Notes            *string    // Заметки (опционально)
	CreatedBy        int64      // ID администратора
}

// Response модель ответа с созданной серией
type Response struct {
	Count           int         // Количество созданных бронирований
	ParentBookingID string      // Общий идентификатор серии
	Dates           []time.Time // Времена начала созданных бронирований
}

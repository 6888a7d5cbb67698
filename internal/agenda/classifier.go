package agenda

import "github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/domain"

// Classifier отвечает на вопросы о принадлежности момента времени записям дня.
//
// Бронирования проверяются по полуинтервалу [start, end), свободные интервалы по
// отрезку [start, end]: минута окончания перерыва для отображения еще считается перерывом.
// При пересекающихся записях возвращается первая в порядке входных данных
type Classifier struct {
	bookings []domain.Appointment
	free     []domain.Appointment
}

// NewClassifier раскладывает записи дня на бронирования и свободные интервалы.
// Отмененные записи игнорируются
func NewClassifier(appointments []domain.Appointment) *Classifier {
	c := &Classifier{
		bookings: make([]domain.Appointment, 0, len(appointments)),
		free:     make([]domain.Appointment, 0),
	}

	for _, a := range appointments {
		switch {
		case a.IsFreeInterval():
			c.free = append(c.free, a)
		case a.IsBooking():
			c.bookings = append(c.bookings, a)
		}
	}

	return c
}

// Bookings возвращает бронирования (не отмененные и не свободные интервалы)
func (c *Classifier) Bookings() []domain.Appointment {
	return c.bookings
}

// FreeIntervals возвращает записи со статусом free
func (c *Classifier) FreeIntervals() []domain.Appointment {
	return c.free
}

// IsBooked проверяет, что слот попадает внутрь бронирования
func (c *Classifier) IsBooked(t int) bool {
	_, ok := c.AppointmentAt(t)
	return ok
}

// IsFreeIntervalMember проверяет, что слот попадает внутрь свободного интервала (включая минуту окончания)
func (c *Classifier) IsFreeIntervalMember(t int) bool {
	_, ok := c.FreeIntervalAt(t)
	return ok
}

// AppointmentAt возвращает бронирование, содержащее слот
func (c *Classifier) AppointmentAt(t int) (*domain.Appointment, bool) {
	for i := range c.bookings {
		if c.bookings[i].StartTime <= t && t < c.bookings[i].EndTime {
			a := c.bookings[i]
			return &a, true
		}
	}
	return nil, false
}

// FreeIntervalAt возвращает свободный интервал, содержащий слот
func (c *Classifier) FreeIntervalAt(t int) (*domain.Appointment, bool) {
	for i := range c.free {
		if c.free[i].StartTime <= t && t <= c.free[i].EndTime {
			f := c.free[i]
			return &f, true
		}
	}
	return nil, false
}

// IsAppointmentStart проверяет, что со слота начинается бронирование
func (c *Classifier) IsAppointmentStart(t int) bool {
	for i := range c.bookings {
		if c.bookings[i].StartTime == t {
			return true
		}
	}
	return false
}

// IsFreeIntervalStart проверяет, что со слота начинается свободный интервал
func (c *Classifier) IsFreeIntervalStart(t int) bool {
	for i := range c.free {
		if c.free[i].StartTime == t {
			return true
		}
	}
	return false
}

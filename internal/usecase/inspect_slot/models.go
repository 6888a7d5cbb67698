package inspect_slot

import (
	"time"

	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/domain"
)

// Request модель запроса состояния момента времени
type Request struct {
	ProfessionalID int64     // ID специалиста
	Date           time.Time // Дата
	Time           string    // Момент в формате HH:MM
}

// Response состояние момента времени в рассчитанном дне
type Response struct {
	Date               time.Time
	Time               string
	Slot               domain.PresentedSlot // Классификация по приоритету: обед > бронь > перерыв > encaixe > свободно
	Visible            bool                 // Момент присутствует в итоговом списке слотов
	Booked             bool                 // Внутри бронирования, полуинтервал [start, end)
	FreeIntervalMember bool                 // Внутри свободного интервала, отрезок [start, end]
	Appointment        *domain.Appointment  // Бронирование, содержащее момент
	FreeInterval       *domain.Appointment  // Свободный интервал, содержащий момент
	FitSlot            *domain.FitSlot      // Encaixe, начинающийся в этот момент
}

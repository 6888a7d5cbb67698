package get_day_slots

import (
	"time"

	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/agenda"
	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/domain"
)

// Request модель запроса слотов дня
type Request struct {
	ProfessionalID int64     // ID специалиста
	Date           time.Time // Дата (без времени). Нулевое значение - сегодня
}

// Response модель ответа со слотами дня
type Response struct {
	Date           time.Time              // Дата, на которую считались слоты
	ProfessionalID int64                  // ID специалиста
	HasSchedule    bool                   // false - расписания нет, список пуст
	Slots          []domain.PresentedSlot // Итоговый список слотов
	Dropped        int                    // Сколько записей бэкенда отброшено при нормализации
	Day            *agenda.Day            // Рассчитанный день для точечных запросов
}

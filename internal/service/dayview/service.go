// Package dayview keeps the currently selected agenda day of one professional.
// The last requested date wins: older in-flight loads are canceled and their results discarded.
package dayview

import (
	"context"
	"sync"
	"time"

	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/domain"
	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/usecase/get_day_slots"
)

// View выбранный день агенды специалиста
type View struct {
	daySlots       DaySlots
	professionalID int64
	logger         Logger

	mu         sync.Mutex
	generation uint64
	selected   time.Time
	cancel     context.CancelFunc
	current    *get_day_slots.Response
}

// NewView создает представление агенды специалиста
func NewView(daySlots DaySlots, professionalID int64, logger Logger) *View {
	return &View{
		daySlots:       daySlots,
		professionalID: professionalID,
		logger:         logger,
	}
}

// Load выбирает дату и рассчитывает ее день.
// Предыдущая незавершенная загрузка отменяется; если эту загрузку обогнала новая, возвращается ErrStale
func (v *View) Load(ctx context.Context, date time.Time) (*get_day_slots.Response, error) {
	// 1. Регистрируем загрузку и отменяем предыдущую
	v.mu.Lock()
	if v.cancel != nil {
		v.cancel()
	}
	v.generation++
	gen := v.generation
	v.selected = date
	loadCtx, cancel := context.WithCancel(ctx)
	v.cancel = cancel
	v.mu.Unlock()

	defer cancel()

	// 2. Рассчитываем день
	resp, err := v.daySlots.Execute(loadCtx, &get_day_slots.Request{
		ProfessionalID: v.professionalID,
		Date:           date,
	})

	// 3. Публикуем, только если загрузка все еще последняя
	v.mu.Lock()
	defer v.mu.Unlock()

	if gen != v.generation {
		v.logger.Info("DayView: discarding stale load for %s", date.Format(domain.DateFormat))
		return nil, ErrStale
	}
	v.cancel = nil

	if err != nil {
		v.logger.Warn("DayView: load %s failed: %v", date.Format(domain.DateFormat), err)
		return nil, err
	}

	v.current = resp
	return resp, nil
}

// Refresh пересчитывает выбранную дату (опрос по таймеру)
func (v *View) Refresh(ctx context.Context) (*get_day_slots.Response, error) {
	return v.Load(ctx, v.Selected())
}

// Shift переходит на days дней вперед или назад от выбранной даты
func (v *View) Shift(ctx context.Context, days int) (*get_day_slots.Response, error) {
	return v.Load(ctx, v.Selected().AddDate(0, 0, days))
}

// Selected возвращает выбранную дату
func (v *View) Selected() time.Time {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.selected
}

// Current возвращает последний опубликованный день или nil
func (v *View) Current() *get_day_slots.Response {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.current
}

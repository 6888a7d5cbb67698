package get_day_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/domain"
	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/normalize"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeSource struct {
	env          *normalize.ScheduleEnvelope
	appointments []normalize.RawAppointment
	scheduleErr  error
	apptErr      error
	gotDate      time.Time
}

func (s *fakeSource) GetSchedule(_ context.Context, _ int64, date time.Time) (*normalize.ScheduleEnvelope, error) {
	s.gotDate = date
	return s.env, s.scheduleErr
}

func (s *fakeSource) GetAppointments(_ context.Context, _ int64, _ time.Time) ([]normalize.RawAppointment, error) {
	return s.appointments, s.apptErr
}

type fakeMetrics struct {
	days    int
	slots   int
	fits    int
	dropped map[string]int
}

func (m *fakeMetrics) ObserveDay(_ string, slots, fitSlots int) {
	m.days++
	m.slots = slots
	m.fits = fitSlots
}

func (m *fakeMetrics) RecordsDroppedBy(reasons map[string]int) {
	if m.dropped == nil {
		m.dropped = map[string]int{}
	}
	for k, v := range reasons {
		m.dropped[k] += v
	}
}

type fixedTime time.Time

func (f fixedTime) Now() time.Time { return time.Time(f) }

var monday = time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

func weekday(day int, start, end string) normalize.RawSchedule {
	return normalize.RawSchedule{DayOfWeek: &day, StartTime: start, EndTime: end}
}

func newUseCase(source *fakeSource, metrics *fakeMetrics) *UseCase {
	return NewUseCase(source, "backend", normalize.New(nopLogger{}), metrics, nopLogger{})
}

func TestUseCase_Execute(t *testing.T) {
	source := &fakeSource{
		env: &normalize.ScheduleEnvelope{HasSchedule: true, Schedules: []normalize.RawSchedule{
			weekday(1, "10:00:00", "11:30:00"),
		}},
		appointments: []normalize.RawAppointment{
			{ID: 1, StartTime: "10:00:00", EndTime: "10:47:00", Status: "confirmed"},
			{ID: 2, StartTime: "nonsense", EndTime: "11:00", Status: "pending"},
		},
	}
	metrics := &fakeMetrics{}

	resp, err := newUseCase(source, metrics).Execute(context.Background(), &Request{ProfessionalID: 42, Date: monday})
	require.NoError(t, err)

	assert.True(t, resp.HasSchedule)
	assert.Equal(t, 1, resp.Dropped)
	require.Len(t, resp.Slots, 4)
	assert.Equal(t, "10:00", resp.Slots[0].Time)
	assert.Equal(t, domain.SlotBooked, resp.Slots[0].Kind)
	assert.Equal(t, "10:47", resp.Slots[1].Time)
	assert.Equal(t, domain.SlotFit, resp.Slots[1].Kind)
	require.NotNil(t, resp.Day)

	assert.Equal(t, 1, metrics.days)
	assert.Equal(t, 4, metrics.slots)
	assert.Equal(t, 1, metrics.fits)
	assert.Equal(t, map[string]int{normalize.ReasonFormat: 1}, metrics.dropped)
}

func TestUseCase_NoSchedule(t *testing.T) {
	tests := []struct {
		name string
		env  *normalize.ScheduleEnvelope
	}{
		{name: "has schedule false", env: &normalize.ScheduleEnvelope{HasSchedule: false}},
		{name: "other weekday only", env: &normalize.ScheduleEnvelope{HasSchedule: true, Schedules: []normalize.RawSchedule{
			weekday(2, "08:00", "18:00"),
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := &fakeSource{env: tt.env, appointments: []normalize.RawAppointment{
				{ID: 1, StartTime: "10:00", EndTime: "10:47", Status: "confirmed"},
			}}

			resp, err := newUseCase(source, &fakeMetrics{}).Execute(context.Background(), &Request{ProfessionalID: 1, Date: monday})
			require.NoError(t, err)
			assert.False(t, resp.HasSchedule)
			assert.NotNil(t, resp.Slots)
			assert.Empty(t, resp.Slots)
		})
	}
}

func TestUseCase_DateSpecificOverride(t *testing.T) {
	source := &fakeSource{env: &normalize.ScheduleEnvelope{HasSchedule: true, Schedules: []normalize.RawSchedule{
		weekday(1, "08:00", "18:00"),
		{Date: "2025-03-10", IsDayOff: true},
	}}}

	resp, err := newUseCase(source, &fakeMetrics{}).Execute(context.Background(), &Request{ProfessionalID: 1, Date: monday})
	require.NoError(t, err)
	assert.True(t, resp.HasSchedule)
	assert.Empty(t, resp.Slots)
}

func TestUseCase_InvalidSchedule(t *testing.T) {
	source := &fakeSource{env: &normalize.ScheduleEnvelope{HasSchedule: true, Schedules: []normalize.RawSchedule{
		weekday(1, "18:00", "08:00"),
	}}}

	resp, err := newUseCase(source, &fakeMetrics{}).Execute(context.Background(), &Request{ProfessionalID: 1, Date: monday})
	assert.ErrorIs(t, err, ErrInvalidSchedule)
	assert.Nil(t, resp)
}

func TestUseCase_SourceErrors(t *testing.T) {
	boom := errors.New("connection refused")

	_, err := newUseCase(&fakeSource{scheduleErr: boom}, &fakeMetrics{}).
		Execute(context.Background(), &Request{ProfessionalID: 1, Date: monday})
	assert.ErrorIs(t, err, ErrSourceUnavailable)

	_, err = newUseCase(&fakeSource{env: &normalize.ScheduleEnvelope{}, apptErr: boom}, &fakeMetrics{}).
		Execute(context.Background(), &Request{ProfessionalID: 1, Date: monday})
	assert.ErrorIs(t, err, ErrSourceUnavailable)
}

func TestUseCase_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newUseCase(&fakeSource{scheduleErr: context.Canceled}, &fakeMetrics{}).
		Execute(ctx, &Request{ProfessionalID: 1, Date: monday})
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrSourceUnavailable)
}

func TestUseCase_InvalidInput(t *testing.T) {
	_, err := newUseCase(&fakeSource{}, &fakeMetrics{}).Execute(context.Background(), &Request{ProfessionalID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUseCase_DefaultsToToday(t *testing.T) {
	source := &fakeSource{env: &normalize.ScheduleEnvelope{}}
	uc := newUseCase(source, &fakeMetrics{})
	uc.timeProvider = fixedTime(time.Date(2025, time.March, 12, 15, 4, 5, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{ProfessionalID: 1})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC), resp.Date)
	assert.Equal(t, resp.Date, source.gotDate)
}

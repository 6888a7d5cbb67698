package inspect_slot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/agenda"
	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/domain"
	getDaySlots "github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/usecase/get_day_slots"
	inspectSlot "github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/usecase/inspect_slot"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	got  *inspectSlot.Request
	resp *inspectSlot.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *inspectSlot.Request) (*inspectSlot.Response, error) {
	f.got = req
	return f.resp, f.err
}

func serve(uc InspectSlotUseCase, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/professionals/{professionalId}/slots/{time}", NewHandler(uc, nopLogger{}).Handle)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_OK(t *testing.T) {
	monday := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &inspectSlot.Response{
		Date:        monday,
		Time:        "10:30",
		Slot:        domain.PresentedSlot{Time: "10:30", Minutes: 630, Kind: domain.SlotBooked, Label: "10:00 - 10:47"},
		Booked:      true,
		Appointment: &domain.Appointment{ID: 1, StartTime: 600, EndTime: 647, Status: domain.StatusConfirmed},
	}}

	rec := serve(uc, "/api/v1/professionals/42/slots/10:30?date=2025-03-10")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, int64(42), uc.got.ProfessionalID)
	assert.Equal(t, "10:30", uc.got.Time)
	assert.Equal(t, monday, uc.got.Date)

	var body SlotStateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "booked", body.Kind)
	assert.True(t, body.Booked)
	assert.False(t, body.Visible)
	require.NotNil(t, body.Appointment)
	assert.Equal(t, "10:47", body.Appointment.EndTime)
	assert.Nil(t, body.FitSlot)
}

type fixedDaySlots struct {
	day *agenda.Day
}

func (f *fixedDaySlots) Execute(_ context.Context, req *getDaySlots.Request) (*getDaySlots.Response, error) {
	return &getDaySlots.Response{Date: req.Date, ProfessionalID: req.ProfessionalID, HasSchedule: true, Slots: f.day.Slots, Day: f.day}, nil
}

func TestHandler_AcceptsSecondsInPath(t *testing.T) {
	monday := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	day, err := agenda.Compute(&domain.WorkSchedule{DayOfWeek: time.Monday, StartTime: 600, EndTime: 720}, []domain.Appointment{
		{ID: 1, StartTime: 600, EndTime: 647, Status: domain.StatusConfirmed},
	}, monday)
	require.NoError(t, err)

	uc := inspectSlot.NewUseCase(&fixedDaySlots{day: day}, nopLogger{})

	rec := serve(uc, "/api/v1/professionals/42/slots/10:30:00?date=2025-03-10")
	require.Equal(t, http.StatusOK, rec.Code)

	var body SlotStateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "10:30", body.Time)
	assert.Equal(t, "booked", body.Kind)
	assert.True(t, body.Booked)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name   string
		target string
		err    error
		status int
	}{
		{name: "bad professional", target: "/api/v1/professionals/abc/slots/10:00", status: http.StatusBadRequest},
		{name: "bad date", target: "/api/v1/professionals/1/slots/10:00?date=10/03/2025", status: http.StatusBadRequest},
		{name: "bad time", target: "/api/v1/professionals/1/slots/25:00", err: fmt.Errorf("%w: hour", inspectSlot.ErrInvalidInput), status: http.StatusBadRequest},
		{name: "invalid schedule", target: "/api/v1/professionals/1/slots/10:00", err: fmt.Errorf("%w: x", getDaySlots.ErrInvalidSchedule), status: http.StatusUnprocessableEntity},
		{name: "source down", target: "/api/v1/professionals/1/slots/10:00", err: fmt.Errorf("%w: x", getDaySlots.ErrSourceUnavailable), status: http.StatusBadGateway},
		{name: "internal", target: "/api/v1/professionals/1/slots/10:00", err: fmt.Errorf("%w: x", getDaySlots.ErrInternal), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeUseCase{err: tt.err}, tt.target)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

package agenda

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/domain"
)

func TestDetectFitSlots_Boundaries(t *testing.T) {
	cases := []struct {
		name     string
		end      string
		wantFit  bool
		wantEnd  string
		duration int
	}{
		{"47 minutes past", "10:47", true, "11:00", 13},
		{"inclusive lower bound", "10:50", true, "11:00", 10},
		{"gap to 10:45", "10:32", true, "10:45", 13},
		{"on grid", "10:45", false, "", 0},
		{"too short", "10:52", false, "", 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			fits := DetectFitSlots([]domain.Appointment{
				appt(1, "10:00", c.end, domain.StatusConfirmed),
			})

			if !c.wantFit {
				assert.Empty(t, fits)
				return
			}

			require.Len(t, fits, 1)
			assert.Equal(t, m(c.end), fits[0].Time)
			assert.Equal(t, m(c.wantEnd), fits[0].EndTime)
			assert.Equal(t, c.duration, fits[0].DurationMinutes)
			assert.True(t, fits[0].Opportunistic)
			assert.Equal(t, int64(1), fits[0].AfterAppointmentID)
		})
	}
}

func TestDetectFitSlots_ConflictRejected(t *testing.T) {
	fits := DetectFitSlots([]domain.Appointment{
		appt(1, "10:00", "10:47", domain.StatusConfirmed),
		appt(2, "10:50", "11:15", domain.StatusConfirmed),
	})

	assert.Empty(t, fits)
}

func TestDetectFitSlots_IgnoresCanceledAndFree(t *testing.T) {
	fits := DetectFitSlots([]domain.Appointment{
		appt(1, "10:00", "10:47", domain.StatusPending),
		appt(2, "10:50", "11:15", domain.StatusCanceled),
		appt(3, "10:48", "10:58", domain.StatusFree),
	})

	require.Len(t, fits, 1)
	assert.Equal(t, m("10:47"), fits[0].Time)
}

func TestDetectFitSlots_CanceledNeverYieldsFit(t *testing.T) {
	fits := DetectFitSlots([]domain.Appointment{
		appt(1, "10:00", "10:47", domain.StatusCanceled),
		appt(2, "11:00", "11:50", domain.StatusFree),
	})

	assert.Empty(t, fits)
}

func TestDetectFitSlots_SortedAndDeduplicated(t *testing.T) {
	fits := DetectFitSlots([]domain.Appointment{
		appt(1, "14:00", "14:33", domain.StatusCompleted),
		appt(2, "09:00", "09:47", domain.StatusConfirmed),
		appt(3, "09:10", "09:47", domain.StatusConfirmed),
	})

	require.Len(t, fits, 2)
	assert.Equal(t, m("09:47"), fits[0].Time)
	assert.Equal(t, int64(2), fits[0].AfterAppointmentID)
	assert.Equal(t, m("14:33"), fits[1].Time)
	assert.Equal(t, 12, fits[1].DurationMinutes)
}

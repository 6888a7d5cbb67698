package agenda

import (
	"cmp"
	"slices"

	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/domain"
	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/pkg/timeutil"
)

// DetectFitSlots ищет "encaixes": короткие промежутки между окончанием бронирования
// нестандартной длительности и следующей границей сетки.
//
// Промежуток принимается, если его длительность в [10, 30] минут и он не пересекается
// ни с одним другим бронированием. Отмененные записи и свободные интервалы не участвуют
func DetectFitSlots(appointments []domain.Appointment) []domain.FitSlot {
	bookings := make([]domain.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if a.IsBooking() && a.Valid() {
			bookings = append(bookings, a)
		}
	}

	slices.SortStableFunc(bookings, func(a, b domain.Appointment) int {
		return cmp.Compare(a.StartTime, b.StartTime)
	})

	fits := make([]domain.FitSlot, 0)
	for i, a := range bookings {
		gridEnd := timeutil.NextGridBoundary(a.EndTime)

		// Бронирование заканчивается ровно на границе сетки - промежутка нет
		if gridEnd == a.EndTime {
			continue
		}

		duration := gridEnd - a.EndTime
		if duration < domain.MinFitSlotMinutes || duration > domain.MaxFitSlotMinutes {
			continue
		}

		if overlapsOtherBooking(bookings, i, a.EndTime, gridEnd) {
			continue
		}

		// Два бронирования с одинаковым окончанием дают один encaixe
		if containsFitAt(fits, a.EndTime) {
			continue
		}

		fits = append(fits, domain.FitSlot{
			Time:               a.EndTime,
			EndTime:            gridEnd,
			DurationMinutes:    duration,
			Opportunistic:      true,
			AfterAppointmentID: a.ID,
		})
	}

	return fits
}

// overlapsOtherBooking проверяет пересечение [start, end) с любым бронированием, кроме self
func overlapsOtherBooking(bookings []domain.Appointment, self int, start, end int) bool {
	for j := range bookings {
		if j == self {
			continue
		}
		if start < bookings[j].EndTime && end > bookings[j].StartTime {
			return true
		}
	}
	return false
}

func containsFitAt(fits []domain.FitSlot, t int) bool {
	for _, f := range fits {
		if f.Time == t {
			return true
		}
	}
	return false
}

package agenda

import (
	"cmp"
	"slices"

	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/domain"
)

// MergeFreeIntervals сливает пересекающиеся и соприкасающиеся свободные интервалы
// в максимальные непересекающиеся отрезки, упорядоченные по началу.
//
// Интервалы склеиваются, если next.start <= current.end
func MergeFreeIntervals(intervals []domain.Appointment) []domain.FreeSpan {
	spans := make([]domain.FreeSpan, 0, len(intervals))
	if len(intervals) == 0 {
		return spans
	}

	sorted := slices.Clone(intervals)
	slices.SortStableFunc(sorted, func(a, b domain.Appointment) int {
		return cmp.Compare(a.StartTime, b.StartTime)
	})

	current := newSpan(sorted[0])
	for _, next := range sorted[1:] {
		if next.StartTime <= current.End {
			current.End = max(current.End, next.EndTime)
			current.Intervals = append(current.Intervals, next)
			continue
		}

		spans = append(spans, current)
		current = newSpan(next)
	}
	spans = append(spans, current)

	return spans
}

func newSpan(a domain.Appointment) domain.FreeSpan {
	return domain.FreeSpan{
		Start:     a.StartTime,
		End:       a.EndTime,
		Intervals: []domain.Appointment{a},
	}
}

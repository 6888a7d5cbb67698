package normalize

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ScheduleEnvelope ответ бэкенда на запрос расписания
type ScheduleEnvelope struct {
	HasSchedule bool          `json:"hasSchedule"`
	Schedules   []RawSchedule `json:"schedules"`
}

// RawSchedule запись расписания в том виде, в каком ее отдает бэкенд.
// Имена полей приходят в snake_case или camelCase, время - "HH:MM:SS" или timestamp
type RawSchedule struct {
	DayOfWeek      *int   `json:"dayOfWeek"`
	Date           string `json:"date,omitempty"`
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
	LunchStartTime string `json:"lunchStartTime,omitempty"`
	LunchEndTime   string `json:"lunchEndTime,omitempty"`
	IsDayOff       bool   `json:"isDayOff"`
}

// RawAppointment запись агенды в том виде, в каком ее отдает бэкенд
type RawAppointment struct {
	ID              int64  `json:"id"`
	Date            string `json:"date,omitempty"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes,omitempty"`
	Status          string `json:"status"`
	ClientName      string `json:"clientName,omitempty"`
	ServiceName     string `json:"serviceName,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

var weekdayNames = map[string]int{
	"sunday": 0, "monday": 1, "tuesday": 2, "wednesday": 3, "thursday": 4, "friday": 5, "saturday": 6,
	"domingo": 0, "segunda": 1, "terca": 2, "terça": 2, "quarta": 3, "quinta": 4, "sexta": 5, "sabado": 6, "sábado": 6,
}

// UnmarshalJSON принимает все известные варианты имен полей
func (s *RawSchedule) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	if day, ok := pickInt(fields, "day_of_week", "dayOfWeek", "weekday"); ok {
		s.DayOfWeek = &day
	} else if name := strings.ToLower(pickString(fields, "day_of_week", "dayOfWeek", "weekday")); name != "" {
		if day, ok := weekdayNames[name]; ok {
			s.DayOfWeek = &day
		}
	}

	s.Date = pickString(fields, "date", "specific_date", "specificDate")
	s.StartTime = pickString(fields, "start_time", "startTime", "start")
	s.EndTime = pickString(fields, "end_time", "endTime", "end")
	s.LunchStartTime = pickString(fields, "lunch_start_time", "lunchStartTime", "lunch_start", "lunchStart")
	s.LunchEndTime = pickString(fields, "lunch_end_time", "lunchEndTime", "lunch_end", "lunchEnd")
	s.IsDayOff = pickBool(fields, "is_day_off", "isDayOff", "day_off", "dayOff")

	return nil
}

// UnmarshalJSON принимает все известные варианты имен полей
func (a *RawAppointment) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	if id, ok := pickInt(fields, "id", "appointment_id", "appointmentId"); ok {
		a.ID = int64(id)
	}
	a.Date = pickString(fields, "appointment_date", "appointmentDate", "date")
	a.StartTime = pickString(fields, "start_time", "startTime", "appointment_time", "appointmentTime")
	a.EndTime = pickString(fields, "end_time", "endTime")
	if d, ok := pickInt(fields, "duration_minutes", "durationMinutes", "duration"); ok {
		a.DurationMinutes = d
	}
	a.Status = pickString(fields, "status")
	a.ClientName = pickString(fields, "client_name", "clientName", "client")
	a.ServiceName = pickString(fields, "service_name", "serviceName", "service")
	a.Notes = pickString(fields, "notes", "observation")

	// Вложенные объекты client / service
	if a.ClientName == "" {
		a.ClientName = pickNestedName(fields, "client")
	}
	if a.ServiceName == "" {
		a.ServiceName = pickNestedName(fields, "service")
	}

	return nil
}

func pickString(fields map[string]json.RawMessage, keys ...string) string {
	for _, key := range keys {
		raw, ok := fields[key]
		if !ok || string(raw) == "null" {
			continue
		}

		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return strings.TrimSpace(s)
		}

		var n json.Number
		if err := json.Unmarshal(raw, &n); err == nil {
			return n.String()
		}
	}
	return ""
}

func pickInt(fields map[string]json.RawMessage, keys ...string) (int, bool) {
	for _, key := range keys {
		raw, ok := fields[key]
		if !ok || string(raw) == "null" {
			continue
		}

		var n int
		if err := json.Unmarshal(raw, &n); err == nil {
			return n, true
		}

		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			if v, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
				return v, true
			}
		}
	}
	return 0, false
}

func pickBool(fields map[string]json.RawMessage, keys ...string) bool {
	for _, key := range keys {
		raw, ok := fields[key]
		if !ok || string(raw) == "null" {
			continue
		}

		var b bool
		if err := json.Unmarshal(raw, &b); err == nil {
			return b
		}

		var n int
		if err := json.Unmarshal(raw, &n); err == nil {
			return n != 0
		}

		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			v, _ := strconv.ParseBool(strings.TrimSpace(s))
			return v
		}
	}
	return false
}

func pickNestedName(fields map[string]json.RawMessage, key string) string {
	raw, ok := fields[key]
	if !ok {
		return ""
	}
	var nested map[string]json.RawMessage
	if err := json.Unmarshal(raw, &nested); err != nil {
		return ""
	}
	return pickString(nested, "name")
}

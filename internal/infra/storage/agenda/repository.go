package agenda

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/domain"
	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/normalize"
	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/pkg/dbmetrics"
	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/pkg/psqlbuilder"
)

// Repository читает расписания и записи напрямую из таблиц бэкенда.
// Только чтение: схемой владеет бэкенд
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория агенды
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetSchedule получает расписания специалиста, применимые к дате:
// расписание на конкретную дату и недельное расписание на день недели
func (r *Repository) GetSchedule(ctx context.Context, professionalID int64, date time.Time) (*normalize.ScheduleEnvelope, error) {
	ctx = dbmetrics.WithOperation(ctx, "GetSchedule")

	query, args, err := scheduleQuery(professionalID, date)
	if err != nil {
		return nil, fmt.Errorf("%w: GetSchedule - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetSchedule - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	env := &normalize.ScheduleEnvelope{Schedules: make([]normalize.RawSchedule, 0)}
	for rows.Next() {
		var (
			dayOfWeek                    sql.NullInt64
			specificDate                 sql.NullString
			startTime, endTime           sql.NullString
			lunchStartTime, lunchEndTime sql.NullString
			isDayOff                     sql.NullBool
		)

		if err := rows.Scan(
			&dayOfWeek,
			&specificDate,
			&startTime,
			&endTime,
			&lunchStartTime,
			&lunchEndTime,
			&isDayOff,
		); err != nil {
			return nil, fmt.Errorf("%w: GetSchedule - scan row: %v", ErrScanRow, err)
		}

		raw := normalize.RawSchedule{
			Date:           specificDate.String,
			StartTime:      startTime.String,
			EndTime:        endTime.String,
			LunchStartTime: lunchStartTime.String,
			LunchEndTime:   lunchEndTime.String,
			IsDayOff:       isDayOff.Bool,
		}
		if dayOfWeek.Valid {
			day := int(dayOfWeek.Int64)
			raw.DayOfWeek = &day
		}

		env.Schedules = append(env.Schedules, raw)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetSchedule - iterate rows: %v", ErrScanRow, err)
	}

	env.HasSchedule = len(env.Schedules) > 0

	return env, nil
}

// GetAppointments получает записи специалиста на дату, включая отмененные и перерывы
func (r *Repository) GetAppointments(ctx context.Context, professionalID int64, date time.Time) ([]normalize.RawAppointment, error) {
	ctx = dbmetrics.WithOperation(ctx, "GetAppointments")

	query, args, err := appointmentsQuery(professionalID, date)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAppointments - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAppointments - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	appointments := make([]normalize.RawAppointment, 0)
	for rows.Next() {
		var (
			a                                   normalize.RawAppointment
			appointmentDate, startTime, endTime sql.NullString
			status, notes                       sql.NullString
			clientName, serviceName             sql.NullString
		)

		if err := rows.Scan(
			&a.ID,
			&appointmentDate,
			&startTime,
			&endTime,
			&status,
			&notes,
			&clientName,
			&serviceName,
		); err != nil {
			return nil, fmt.Errorf("%w: GetAppointments - scan row: %v", ErrScanRow, err)
		}

		a.Date = appointmentDate.String
		a.StartTime = startTime.String
		a.EndTime = endTime.String
		a.Status = status.String
		a.Notes = notes.String
		a.ClientName = clientName.String
		a.ServiceName = serviceName.String

		appointments = append(appointments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAppointments - iterate rows: %v", ErrScanRow, err)
	}

	return appointments, nil
}

func scheduleQuery(professionalID int64, date time.Time) (string, []interface{}, error) {
	day := date.Format(domain.DateFormat)

	return psqlbuilder.Select(
		"day_of_week",
		"to_char(specific_date, 'YYYY-MM-DD')",
		"to_char(start_time, 'HH24:MI')",
		"to_char(end_time, 'HH24:MI')",
		"to_char(lunch_start_time, 'HH24:MI')",
		"to_char(lunch_end_time, 'HH24:MI')",
		"is_day_off",
	).
		From("work_schedules").
		Where(squirrel.Eq{"professional_id": professionalID}).
		Where(squirrel.Or{
			squirrel.Eq{"specific_date": day},
			squirrel.And{
				squirrel.Eq{"specific_date": nil},
				squirrel.Eq{"day_of_week": int(date.Weekday())},
			},
		}).
		OrderBy("specific_date NULLS LAST", "id").
		ToSql()
}

func appointmentsQuery(professionalID int64, date time.Time) (string, []interface{}, error) {
	return psqlbuilder.Select(
		"a.id",
		"to_char(a.appointment_date, 'YYYY-MM-DD')",
		"to_char(a.start_time, 'HH24:MI')",
		"to_char(a.end_time, 'HH24:MI')",
		"a.status",
		"a.notes",
		"c.name",
		"s.name",
	).
		From("appointments a").
		LeftJoin("clients c ON c.id = a.client_id").
		LeftJoin("services s ON s.id = a.service_id").
		Where(squirrel.Eq{
			"a.professional_id":  professionalID,
			"a.appointment_date": date.Format(domain.DateFormat),
		}).
		OrderBy("a.start_time", "a.id").
		ToSql()
}

package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/domain"
	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/normalize"
)

// Client клиент бэкенда расписаний и записей
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента бэкенда.
// Исходящие запросы трассируются через otelhttp
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		log: log,
	}
}

// GetSchedule получает расписание специалиста, действующее на дату
func (c *Client) GetSchedule(ctx context.Context, professionalID int64, date time.Time) (*normalize.ScheduleEnvelope, error) {
	endpoint := fmt.Sprintf("%s/schedules/%d?date=%s", c.baseURL, professionalID, url.QueryEscape(date.Format(domain.DateFormat)))

	body, err := c.get(ctx, endpoint)
	if err != nil {
		if err == ErrNotFound {
			c.log.Info("Backend: no schedule for professional_id=%d", professionalID)
			return &normalize.ScheduleEnvelope{HasSchedule: false}, nil
		}
		return nil, err
	}

	env, err := decodeSchedule(body)
	if err != nil {
		return nil, fmt.Errorf("%w: GetSchedule - decode: %v", ErrInvalidResponse, err)
	}

	return env, nil
}

// GetAppointments получает записи агенды специалиста на дату
func (c *Client) GetAppointments(ctx context.Context, professionalID int64, date time.Time) ([]normalize.RawAppointment, error) {
	endpoint := fmt.Sprintf("%s/appointments/professional/%d?date=%s", c.baseURL, professionalID, url.QueryEscape(date.Format(domain.DateFormat)))

	body, err := c.get(ctx, endpoint)
	if err != nil {
		if err == ErrNotFound {
			return []normalize.RawAppointment{}, nil
		}
		return nil, err
	}

	appointments, err := decodeAppointments(body)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAppointments - decode: %v", ErrInvalidResponse, err)
	}

	return appointments, nil
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrUnavailable, err)
	}

	// Обработка статус-кодов
	switch {
	case resp.StatusCode == http.StatusOK:
		return body, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode >= http.StatusInternalServerError:
		c.log.Error("Backend: %s returned %d: %s", endpoint, resp.StatusCode, string(body))
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	default:
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}
}

// decodeSchedule принимает конверт {hasSchedule, schedules} или голый массив расписаний
func decodeSchedule(body []byte) (*normalize.ScheduleEnvelope, error) {
	body = bytes.TrimSpace(body)

	if len(body) > 0 && body[0] == '[' {
		var schedules []normalize.RawSchedule
		if err := json.Unmarshal(body, &schedules); err != nil {
			return nil, err
		}
		return &normalize.ScheduleEnvelope{HasSchedule: len(schedules) > 0, Schedules: schedules}, nil
	}

	var env struct {
		HasSchedule      *bool                   `json:"hasSchedule"`
		HasScheduleSnake *bool                   `json:"has_schedule"`
		Schedules        []normalize.RawSchedule `json:"schedules"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, err
	}

	has := len(env.Schedules) > 0
	switch {
	case env.HasSchedule != nil:
		has = *env.HasSchedule
	case env.HasScheduleSnake != nil:
		has = *env.HasScheduleSnake
	}

	return &normalize.ScheduleEnvelope{HasSchedule: has, Schedules: env.Schedules}, nil
}

// decodeAppointments принимает массив или объект с полем appointments / data
func decodeAppointments(body []byte) ([]normalize.RawAppointment, error) {
	body = bytes.TrimSpace(body)

	appointments := make([]normalize.RawAppointment, 0)
	if len(body) > 0 && body[0] == '[' {
		if err := json.Unmarshal(body, &appointments); err != nil {
			return nil, err
		}
		return appointments, nil
	}

	var wrapped struct {
		Appointments []normalize.RawAppointment `json:"appointments"`
		Data         []normalize.RawAppointment `json:"data"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, err
	}
	if wrapped.Appointments != nil {
		return wrapped.Appointments, nil
	}
	if wrapped.Data != nil {
		return wrapped.Data, nil
	}
	return appointments, nil
}

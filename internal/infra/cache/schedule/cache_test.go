package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/normalize"
)

type fakeRedis struct {
	redis.Cmdable
	data   map[string]string
	getErr error
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	f.data[key] = string(value.([]byte))
	return redis.NewStatusResult("OK", nil)
}

type fakeSource struct {
	calls int
	env   *normalize.ScheduleEnvelope
	err   error
}

func (s *fakeSource) GetSchedule(context.Context, int64, time.Time) (*normalize.ScheduleEnvelope, error) {
	s.calls++
	return s.env, s.err
}

func (s *fakeSource) GetAppointments(context.Context, int64, time.Time) ([]normalize.RawAppointment, error) {
	return []normalize.RawAppointment{{ID: 1}}, nil
}

type countingMetrics map[string]int

func (m countingMetrics) CacheResult(result string) { m[result]++ }

type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{}) {}

var monday = time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

func weekly() *normalize.ScheduleEnvelope {
	day := 1
	return &normalize.ScheduleEnvelope{
		HasSchedule: true,
		Schedules: []normalize.RawSchedule{
			{DayOfWeek: &day, StartTime: "08:00", EndTime: "18:00", LunchStartTime: "12:00", LunchEndTime: "13:00"},
		},
	}
}

func TestCache_ReadThrough(t *testing.T) {
	rdb := &fakeRedis{data: map[string]string{}}
	source := &fakeSource{env: weekly()}
	metrics := countingMetrics{}
	c := New(rdb, source, time.Minute, "agenda:schedule", nopLogger{}, metrics)

	first, err := c.GetSchedule(context.Background(), 42, monday)
	require.NoError(t, err)
	second, err := c.GetSchedule(context.Background(), 42, monday)
	require.NoError(t, err)

	assert.Equal(t, 1, source.calls)
	assert.Equal(t, first, second)
	assert.Contains(t, rdb.data, "agenda:schedule:42:2025-03-10")
	assert.Equal(t, countingMetrics{ResultMiss: 1, ResultHit: 1}, metrics)
}

func TestCache_RedisDown(t *testing.T) {
	rdb := &fakeRedis{data: map[string]string{}, getErr: errors.New("dial tcp: connection refused")}
	source := &fakeSource{env: weekly()}
	metrics := countingMetrics{}
	c := New(rdb, source, time.Minute, "agenda:schedule", nopLogger{}, metrics)

	env, err := c.GetSchedule(context.Background(), 42, monday)
	require.NoError(t, err)
	assert.True(t, env.HasSchedule)
	assert.Equal(t, 1, metrics[ResultError])
}

func TestCache_CorruptedEntry(t *testing.T) {
	rdb := &fakeRedis{data: map[string]string{"agenda:schedule:42:2025-03-10": "{"}}
	source := &fakeSource{env: weekly()}
	c := New(rdb, source, time.Minute, "agenda:schedule", nopLogger{}, countingMetrics{})

	env, err := c.GetSchedule(context.Background(), 42, monday)
	require.NoError(t, err)
	assert.True(t, env.HasSchedule)
	assert.Equal(t, 1, source.calls)
}

func TestCache_SourceError(t *testing.T) {
	boom := errors.New("boom")
	rdb := &fakeRedis{data: map[string]string{}}
	c := New(rdb, &fakeSource{err: boom}, time.Minute, "p", nopLogger{}, countingMetrics{})

	_, err := c.GetSchedule(context.Background(), 42, monday)
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, rdb.data)
}

func TestCache_AppointmentsBypass(t *testing.T) {
	c := New(&fakeRedis{data: map[string]string{}}, &fakeSource{}, time.Minute, "p", nopLogger{}, countingMetrics{})

	got, err := c.GetAppointments(context.Background(), 42, monday)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

package dbmetrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperation(t *testing.T) {
	assert.Equal(t, "unknown", operation(context.Background()))
	assert.Equal(t, "GetSchedule", operation(WithOperation(context.Background(), "GetSchedule")))
}

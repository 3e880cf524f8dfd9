package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDeadline(t *testing.T) {
	cases := map[string]time.Time{
		"2030-01-01":                time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
		"2030-01-01T10:30:00Z":      time.Date(2030, 1, 1, 10, 30, 0, 0, time.UTC),
		"2030-01-01T10:30:00+02:00": time.Date(2030, 1, 1, 8, 30, 0, 0, time.UTC),
		"2030-01-01T10:30:00.5Z":    time.Date(2030, 1, 1, 10, 30, 0, 500000000, time.UTC),
		"2030-01-01T10:30:00":       time.Date(2030, 1, 1, 10, 30, 0, 0, time.UTC),
	}
	for in, want := range cases {
		got, err := ParseDeadline(in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got), "%s: got %s", in, got)
	}

	_, err := ParseDeadline("next tuesday")
	assert.Error(t, err)
}

func TestTodoRequestDeadline(t *testing.T) {
	var req TodoRequest
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Task","deadline":"2030-01-01"}`), &req))
	assert.Equal(t, "Task", req.Title)
	assert.Equal(t, 2030, req.Deadline.Time().Year())

	for _, body := range []string{`{"title":"Task"}`, `{"title":"Task","deadline":null}`, `{"title":"Task","deadline":"  "}`} {
		var empty TodoRequest
		require.NoError(t, json.Unmarshal([]byte(body), &empty), body)
		assert.True(t, empty.Deadline.Time().IsZero(), body)
	}

	for _, body := range []string{`{"title":"Task","deadline":"tomorrow"}`, `{"title":"Task","deadline":1893456000000}`} {
		var bad TodoRequest
		assert.Error(t, json.Unmarshal([]byte(body), &bad), body)
	}
}

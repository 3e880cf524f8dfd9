package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Deadline parses deadline from JSON as either date-only ("2006-01-02") or RFC3339.
// Date-only is stored as start of that day in UTC. null or "" leave it zero.
type Deadline struct{ t time.Time }

func (d *Deadline) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("deadline: must be a string")
	}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		d.t = time.Time{}
		return nil
	}
	parsed, err := ParseDeadline(*raw)
	if err != nil {
		return err
	}
	d.t = parsed
	return nil
}

// Time returns the parsed value; zero when the field was absent.
func (d Deadline) Time() time.Time { return d.t }

// ParseDeadline accepts a date (YYYY-MM-DD) or an RFC3339 datetime.
func ParseDeadline(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	layouts := []string{
		"2006-01-02",     // date only
		time.RFC3339,     // 2006-01-02T15:04:05Z07:00
		time.RFC3339Nano, // with nanoseconds
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			return parsed.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("deadline: use date (YYYY-MM-DD) or RFC3339 datetime")
}

// TodoRequest is the JSON body for POST /todos and PUT /todos/:id.
type TodoRequest struct {
	Title    string   `json:"title" binding:"required"`
	Deadline Deadline `json:"deadline"`
}

type TodoResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Done      bool      `json:"done"`
	Deadline  time.Time `json:"deadline"`
	CreatedAt time.Time `json:"created_at"`
}

package model

import (
	"database/sql/driver"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// TimeOfDay is a wall-clock time with minute resolution, rendered as "HH:mm".
type TimeOfDay struct {
	Hour   int
	Minute int
}

func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay{Hour: hour, Minute: minute}
}

var bareHour = regexp.MustCompile(`^\d{1,2}$`)

// ParseTimeOfDay converts free-text time input into a time of day. A bare
// hour such as "9" means "09:00", otherwise the input must be "HH:mm" in
// 24-hour notation. Blank input yields def.
func ParseTimeOfDay(s string, def TimeOfDay) (TimeOfDay, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return def, nil
	}

	if bareHour.MatchString(trimmed) {
		hour, err := strconv.Atoi(trimmed)
		if err != nil || hour > 23 {
			return TimeOfDay{}, invalidTime(s)
		}
		return TimeOfDay{Hour: hour}, nil
	}

	t, err := time.Parse("15:04", trimmed)
	if err != nil {
		return TimeOfDay{}, invalidTime(s)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func invalidTime(s string) error {
	return fmt.Errorf("invalid time format %q, expected HH:mm (e.g., 14:30 or 9)", s)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// AddHours returns the time of day n hours later, wrapping at midnight.
func (t TimeOfDay) AddHours(n int) TimeOfDay {
	hour := ((t.Hour+n)%24 + 24) % 24
	return TimeOfDay{Hour: hour, Minute: t.Minute}
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid time %s, expected a JSON string", s)
	}
	parsed, err := time.Parse("15:04", s[1:len(s)-1])
	if err != nil {
		return invalidTime(s)
	}
	*t = TimeOfDay{Hour: parsed.Hour(), Minute: parsed.Minute()}
	return nil
}

// Value implements [driver.Valuer] so the value maps onto a "time" column.
func (t TimeOfDay) Value() (driver.Value, error) {
	return fmt.Sprintf("%02d:%02d:00", t.Hour, t.Minute), nil
}

// Scan implements [sql.Scanner]. "time" columns come back as text or as a
// [time.Time] on the zero day depending on the driver.
func (t *TimeOfDay) Scan(value any) error {
	switch v := value.(type) {
	case time.Time:
		*t = TimeOfDay{Hour: v.Hour(), Minute: v.Minute()}
		return nil
	case string:
		parsed, err := time.Parse("15:04:05", v)
		if err != nil {
			parsed, err = time.Parse("15:04", v)
		}
		if err != nil {
			return invalidTime(v)
		}
		*t = TimeOfDay{Hour: parsed.Hour(), Minute: parsed.Minute()}
		return nil
	case []byte:
		return t.Scan(string(v))
	case nil:
		*t = TimeOfDay{}
		return nil
	default:
		return fmt.Errorf("unsupported time type %T", value)
	}
}

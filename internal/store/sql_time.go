package store

import (
	"fmt"
	"strings"
	"time"
)

// sqliteTimeLayouts are the text encodings a timestamp may come back in when
// the driver does not convert it to time.Time itself.
var sqliteTimeLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339Nano,
}

// timeScanner lets a timestamp column be scanned regardless of whether the
// driver reports it as time.Time (pgx) or as text (SQLite RETURNING).
type timeScanner struct {
	dst *time.Time
}

func scanTime(dst *time.Time) *timeScanner {
	return &timeScanner{dst: dst}
}

func (s *timeScanner) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*s.dst = v
		return nil
	case string:
		return s.parse(v)
	case []byte:
		return s.parse(string(v))
	case nil:
		*s.dst = time.Time{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into time.Time", src)
	}
}

func (s *timeScanner) parse(value string) error {
	value = strings.TrimSpace(value)
	for _, layout := range sqliteTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			*s.dst = t
			return nil
		}
	}
	return fmt.Errorf("cannot parse %q as timestamp", value)
}

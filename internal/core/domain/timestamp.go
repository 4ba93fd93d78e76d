package domain

import (
	"errors"
	"strings"
	"time"
)

var errTimestampFormat = errors.New("unrecognised timestamp format")

// timestampLayouts are tried in order. Fractional seconds are accepted by
// time.Parse after the seconds field even though the layouts omit them.
var timestampLayouts = []struct {
	layout string
	naive  bool
}{
	{"2006-01-02T15:04:05-07:00", false},
	{"2006-01-02 15:04:05-07:00", false},
	{"2006-01-02T15:04-07:00", false},
	{"2006-01-02T15:04:05-0700", false},
	{"2006-01-02T15:04:05", true},
	{"2006-01-02 15:04:05", true},
	{"2006-01-02T15:04", true},
	{"2006-01-02", true},
}

// ParseTimestamp parses an ISO-8601 timestamp. A trailing "Z" is read as
// "+00:00" and timestamps without an offset are taken to be UTC. The result
// is in UTC, truncated to the microsecond precision of the store.
func ParseTimestamp(s string) (time.Time, error) {
	if strings.HasSuffix(s, "Z") {
		s = strings.TrimSuffix(s, "Z") + "+00:00"
	}
	for _, l := range timestampLayouts {
		var (
			t   time.Time
			err error
		)
		if l.naive {
			t, err = time.ParseInLocation(l.layout, s, time.UTC)
		} else {
			t, err = time.Parse(l.layout, s)
		}
		if err == nil {
			return t.UTC().Truncate(time.Microsecond), nil
		}
	}
	return time.Time{}, errTimestampFormat
}

// FormatTimestamp renders t as ISO-8601 in UTC with an explicit "+00:00"
// offset. Microseconds are only written when non-zero.
func FormatTimestamp(t time.Time) string {
	t = t.UTC()
	if t.Nanosecond()/int(time.Microsecond) != 0 {
		return t.Format("2006-01-02T15:04:05.000000-07:00")
	}
	return t.Format("2006-01-02T15:04:05-07:00")
}

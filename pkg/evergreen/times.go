package evergreen

import "time"

const (
	// TimeFormat is the timestamp layout the Evergreen API accepts and
	// emits for datetime query parameters.
	TimeFormat = "2006-01-02T15:04:05.000Z"

	// DateFormat is the day-granularity layout used by the stats endpoints.
	DateFormat = "2006-01-02"
)

// FormatTime renders t in the API's datetime format (UTC, millisecond
// precision).
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeFormat)
}

// FormatDate renders t in the API's date-only format.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateFormat)
}

// ParseTime parses a timestamp the server emitted. The server is not
// strict about fractional-second precision, so any RFC 3339 variant is
// accepted.
func ParseTime(value string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, value)
}

// NormalizeTime round-trips a server timestamp into the exact layout the
// API accepts as input, so a value read from one response can be fed back
// as a cursor parameter. Values that do not parse are passed through
// unchanged.
func NormalizeTime(value string) string {
	t, err := ParseTime(value)
	if err != nil {
		return value
	}
	return FormatTime(t)
}

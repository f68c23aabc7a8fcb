package alliance

import (
	"encoding/json"
	"fmt"
	"time"
)

// Timestamp is a point in time with nanosecond precision. The alliance
// module encodes it on the wire as a UTC RFC 3339 string, e.g.
// "2023-06-06T18:37:29.956787974Z", unlike the plain nanosecond string the
// contract runtime uses natively.
type Timestamp uint64

func TimestampFromTime(t time.Time) Timestamp {
	return Timestamp(t.UnixNano())
}

func (t Timestamp) Time() time.Time {
	return time.Unix(0, int64(t)).UTC()
}

// Nanos returns the timestamp as nanoseconds since the unix epoch.
func (t Timestamp) Nanos() uint64 {
	return uint64(t)
}

func (t Timestamp) String() string {
	return t.Time().Format(time.RFC3339Nano)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &FormatError{Value: string(data), Err: err}
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return &FormatError{Value: s, Err: err}
	}
	*t = Timestamp(parsed.UnixNano())
	return nil
}

// FormatError reports a timestamp that does not parse as RFC 3339.
type FormatError struct {
	Value string
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid RFC 3339 timestamp %q: %v", e.Value, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

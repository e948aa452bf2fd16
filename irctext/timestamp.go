package irctext

import (
	"strconv"
	"time"
)

// Timestamp is an instant carried on the wire either as seconds since the
// Unix epoch or as an RFC 3339 string. The raw integer is kept alongside
// the decoded instant so that out-of-range values survive a round trip.
type Timestamp struct {
	Time time.Time `json:"time"`
	Raw  int64     `json:"raw"`
}

// ParseTimestamp parses a decimal epoch-seconds token or an RFC 3339
// string.
func ParseTimestamp(s string) (Timestamp, error) {
	if s == "" {
		return Timestamp{}, &ValueError{Type: "timestamp", Kind: ValueEmpty}
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return TimestampFromUnix(n), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Timestamp{}, &ValueError{Type: "timestamp", Kind: ValueBadChar}
	}
	return Timestamp{Time: t.UTC(), Raw: t.Unix()}, nil
}

// TimestampFromUnix wraps an epoch-seconds value.
func TimestampFromUnix(n int64) Timestamp {
	return Timestamp{Time: time.Unix(n, 0).UTC(), Raw: n}
}

// String renders the epoch-seconds wire form.
func (ts Timestamp) String() string {
	return strconv.FormatInt(ts.Raw, 10)
}

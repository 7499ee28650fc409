package ident

import "time"

// timestampLayout matches the ReqIF LAST-CHANGE values the converter has
// always written: UTC, whole seconds, explicit +00:00 offset.
const timestampLayout = "2006-01-02T15:04:05.000+00:00"

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time { return c.T }

// Timestamp formats t as a ReqIF timestamp.
func Timestamp(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(timestampLayout)
}

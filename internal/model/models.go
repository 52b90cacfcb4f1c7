package model

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// TimeFormat is the display layout for period timestamps.
const TimeFormat = "15:04 02.01.06"

// NewULID generates a new ULID
func NewULID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
}

// Period is a contiguous interval of tracked working time. A period without
// an end time is open (currently being tracked); at most one open period
// exists at any time.
type Period struct {
	ID        string     `json:"id"`
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty"`
}

// Open reports whether the period is still being tracked.
func (p *Period) Open() bool {
	return p.EndTime == nil
}

// Duration returns the tracked time, counted up to now for an open period.
func (p *Period) Duration() time.Duration {
	if p.EndTime != nil {
		return p.EndTime.Sub(p.StartTime)
	}
	return time.Since(p.StartTime)
}

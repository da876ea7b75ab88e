package jwt

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var errOutOfRange = errors.New("out of range")

const (
	day  = 24 * time.Hour
	week = 7 * day
	year = 365*day + 6*time.Hour
)

// Lifetime is a token validity period decoded from configuration.
//
// Accepted forms:
//
//	"3600"          bare number of seconds
//	"90m", "12h"    any time.ParseDuration value
//	"7d", "2w"      days and weeks
//	"1y"            years (365.25 days)
type Lifetime time.Duration

// Duration returns the lifetime as a time.Duration.
func (l Lifetime) Duration() time.Duration {
	return time.Duration(l)
}

// String implements fmt.Stringer.
func (l Lifetime) String() string {
	return time.Duration(l).String()
}

// UnmarshalText implements encoding.TextUnmarshaler so env and JSON decoders can fill it.
func (l *Lifetime) UnmarshalText(text []byte) error {
	d, err := ParseLifetime(string(text))
	if err != nil {
		return err
	}
	*l = Lifetime(d)
	return nil
}

// ParseLifetime parses a lifetime string and rejects non-positive values.
func ParseLifetime(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidLifetime)
	}

	d, err := parseLifetime(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidLifetime, s, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: %q: must be positive", ErrInvalidLifetime, s)
	}

	return d, nil
}

func parseLifetime(s string) (time.Duration, error) {
	if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
		if secs > math.MaxInt64/int64(time.Second) {
			return 0, errOutOfRange
		}
		return time.Duration(secs) * time.Second, nil
	}

	var unit time.Duration
	switch s[len(s)-1] {
	case 'd':
		unit = day
	case 'w':
		unit = week
	case 'y':
		unit = year
	default:
		return time.ParseDuration(s)
	}

	n, err := strconv.ParseFloat(s[:len(s)-1], 64)
	if err != nil {
		return 0, err
	}
	v := n * float64(unit)
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) >= math.MaxInt64 {
		return 0, errOutOfRange
	}
	return time.Duration(v), nil
}

package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSnapToInterval(t *testing.T) {
	base := time.Date(2024, 1, 10, 9, 0, 0, 0, time.Local)

	cases := []struct {
		name     string
		in       time.Time
		interval int
		want     time.Time
	}{
		{"exact boundary unchanged", base.Add(15 * time.Minute), 15, base.Add(15 * time.Minute)},
		{"rounds down within hour", base.Add(22 * time.Minute), 15, base.Add(15 * time.Minute)},
		{"drops seconds", base.Add(14*time.Minute + 59*time.Second), 15, base},
		{"drops nanoseconds", base.Add(30*time.Minute + 5*time.Nanosecond), 15, base.Add(30 * time.Minute)},
		{"five minute grid", base.Add(13 * time.Minute), 5, base.Add(10 * time.Minute)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SnapToInterval(tc.in, tc.interval))
		})
	}
}

func TestSnapToInterval_Idempotent(t *testing.T) {
	in := time.Date(2024, 1, 10, 9, 22, 37, 123, time.Local)
	once := SnapToInterval(in, 15)
	twice := SnapToInterval(once, 15)
	assert.Equal(t, once, twice)
}

func TestSnapToInterval_NonPositiveIsIdentity(t *testing.T) {
	in := time.Date(2024, 1, 10, 9, 22, 37, 123, time.Local)
	assert.Equal(t, in, SnapToInterval(in, 0))
	assert.Equal(t, in, SnapToInterval(in, -5))
}

func TestParseDateTime(t *testing.T) {
	got, ok := ParseDateTime("2024-01-10 09:15")
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	assert.Equal(t, time.Date(2024, 1, 10, 9, 15, 0, 0, time.Local), got)

	for _, bad := range []string{"", "garbage", "2024-01-10", "09:15", "2024-13-01 09:15"} {
		_, ok := ParseDateTime(bad)
		assert.False(t, ok, "input %q should not parse", bad)
	}
}

func TestFormatDateTime(t *testing.T) {
	in := time.Date(2024, 1, 10, 9, 5, 0, 0, time.Local)
	assert.Equal(t, "2024-01-10 09:05", FormatDateTime(in))
	assert.Equal(t, "", FormatDateTime(time.Time{}))
}

func TestFormatParseRoundTrip(t *testing.T) {
	in := time.Date(2024, 6, 30, 23, 45, 0, 0, time.Local)
	out, ok := ParseDateTime(FormatDateTime(in))
	if !ok {
		t.Fatal("round trip failed to parse")
	}
	assert.Equal(t, in, out)
}

func TestParseClock(t *testing.T) {
	got, ok := ParseClock("09:30")
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	assert.Equal(t, 9, got.Hour())
	assert.Equal(t, 30, got.Minute())

	_, ok = ParseClock("9:3")
	assert.False(t, ok)
	_, ok = ParseClock("25:00")
	assert.False(t, ok)
}

func TestCombineDateClock(t *testing.T) {
	date := time.Date(2024, 1, 10, 0, 0, 0, 0, time.Local)
	clock := time.Date(0, 1, 1, 14, 45, 0, 0, time.Local)
	got := CombineDateClock(date, clock)
	assert.Equal(t, time.Date(2024, 1, 10, 14, 45, 0, 0, time.Local), got)
}

func TestSameDate(t *testing.T) {
	a := time.Date(2024, 1, 10, 0, 5, 0, 0, time.Local)
	b := time.Date(2024, 1, 10, 23, 55, 0, 0, time.Local)
	c := time.Date(2024, 1, 11, 0, 0, 0, 0, time.Local)
	assert.True(t, SameDate(a, b))
	assert.False(t, SameDate(a, c))
}

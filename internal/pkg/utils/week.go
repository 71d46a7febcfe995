package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the ISO calendar-day layout used for records and week keys.
const DateLayout = "2006-01-02"

// DaysPerWeek is the length of a payroll week, Monday through Sunday.
const DaysPerWeek = 7

// ErrInvalidDate is returned for dates not in DateLayout.
var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

// DateOnly drops the clock part of t and pins it to UTC so that dates compare by value.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// WeekStart returns the Monday of the ISO week that contains t.
func WeekStart(t time.Time) time.Time {
	day := DateOnly(t)
	offset := (int(day.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	return day.AddDate(0, 0, -offset)
}

// WeekDays returns the seven dates of the week starting at weekStart.
func WeekDays(weekStart time.Time) []time.Time {
	start := WeekStart(weekStart)
	days := make([]time.Time, DaysPerWeek)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// WeekEnd returns the Sunday closing the week of t.
func WeekEnd(t time.Time) time.Time {
	return WeekStart(t).AddDate(0, 0, DaysPerWeek-1)
}

// InWeek reports whether day falls within the week starting at weekStart.
func InWeek(day, weekStart time.Time) bool {
	start := WeekStart(weekStart)
	d := DateOnly(day)
	return !d.Before(start) && !d.After(start.AddDate(0, 0, DaysPerWeek-1))
}

// IsWeekend reports whether t falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// ParseDate parses a "YYYY-MM-DD" string into a UTC date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return DateOnly(t), nil
}

// ParseWeek parses any date of a week and normalizes it to that week's Monday.
func ParseWeek(s string) (time.Time, error) {
	t, err := ParseDate(s)
	if err != nil {
		return time.Time{}, err
	}
	return WeekStart(t), nil
}

// FormatDate renders t as "YYYY-MM-DD".
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseClock converts an "HH:MM" time of day into minutes after midnight.
func ParseClock(s string) (int, error) {
	s = strings.TrimSpace(s)
	hh, mm, ok := strings.Cut(s, ":")
	if !ok || len(hh) == 0 || len(hh) > 2 || len(mm) != 2 || !allDigits(hh) || !allDigits(mm) {
		return 0, fmt.Errorf("invalid time %q: want HH:MM", s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	return h*60 + m, nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// FormatClock renders minutes after midnight as "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

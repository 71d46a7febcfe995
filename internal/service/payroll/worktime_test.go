package payroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var (
	monday   = time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)
	saturday = monday.AddDate(0, 0, 5)
	sunday   = monday.AddDate(0, 0, 6)
)

func s(v string) *string { return &v }

func TestSplitDay_WeekdayBeforeThreshold(t *testing.T) {
	split := SplitDay(monday, s("09:15"), s("13:15"), s("13:45"), s("18:45"))

	assert.True(t, split.Valid)
	assert.Equal(t, 540, split.NormalMinutes)
	assert.Equal(t, 0, split.OvertimeMinutes)
	assert.Equal(t, 18*60+45, split.ExitMinute)
}

func TestSplitDay_WeekdayAfterThreshold(t *testing.T) {
	split := SplitDay(monday, s("09:15"), s("13:15"), s("13:45"), s("20:30"))

	assert.Equal(t, 540, split.NormalMinutes)
	assert.Equal(t, 105, split.OvertimeMinutes)
}

func TestSplitDay_LunchAfterThreshold(t *testing.T) {
	// lunch taken after 18:45 is excluded from overtime, not from normal time
	split := SplitDay(monday, s("12:00"), s("19:00"), s("19:30"), s("21:00"))

	assert.Equal(t, 405, split.NormalMinutes)
	assert.Equal(t, 15+90, split.OvertimeMinutes)
}

func TestSplitDay_Weekend(t *testing.T) {
	for _, day := range []time.Time{saturday, sunday} {
		split := SplitDay(day, s("08:00"), s("12:00"), s("12:30"), s("16:30"))
		assert.Equal(t, 0, split.NormalMinutes, day.Weekday().String())
		assert.Equal(t, 480, split.OvertimeMinutes, day.Weekday().String())
	}
}

func TestSplitDay_MissingPunch(t *testing.T) {
	// Saturday 08:00-14:00 without lunch punches contributes nothing
	split := SplitDay(saturday, s("08:00"), nil, nil, s("14:00"))

	assert.False(t, split.Valid)
	assert.Zero(t, split.NormalMinutes)
	assert.Zero(t, split.OvertimeMinutes)
}

func TestSplitDay_MalformedPunch(t *testing.T) {
	split := SplitDay(monday, s("8.15"), s("13:15"), s("13:45"), s("18:45"))

	assert.False(t, split.Valid)
	assert.Zero(t, split.WorkedMinutes())
}

func TestSplitDay_NegativeSegmentsClamp(t *testing.T) {
	// exit before lunch end: second segment is 0, never negative
	split := SplitDay(monday, s("08:00"), s("12:00"), s("13:00"), s("12:30"))
	assert.Equal(t, 240, split.NormalMinutes)
	assert.Equal(t, 0, split.OvertimeMinutes)

	// everything inverted
	split = SplitDay(monday, s("18:00"), s("09:00"), s("17:00"), s("08:00"))
	assert.True(t, split.Valid)
	assert.Zero(t, split.WorkedMinutes())
}

func TestSplitDay_WeekdayExitNotAfterThresholdHasNoOvertime(t *testing.T) {
	punches := [][4]string{
		{"07:00", "12:00", "12:30", "16:00"},
		{"09:00", "09:00", "09:00", "18:45"},
		{"06:30", "11:00", "11:45", "18:44"},
		{"10:00", "14:00", "15:00", "15:00"},
	}
	for i := 0; i < 5; i++ {
		day := monday.AddDate(0, 0, i)
		for _, p := range punches {
			split := SplitDay(day, s(p[0]), s(p[1]), s(p[2]), s(p[3]))
			total := span(mustClock(p[0]), mustClock(p[1])) + span(mustClock(p[2]), mustClock(p[3]))
			assert.Zero(t, split.OvertimeMinutes, "%v %v", day.Weekday(), p)
			assert.Equal(t, total, split.NormalMinutes, "%v %v", day.Weekday(), p)
		}
	}
}

func TestSplitAt(t *testing.T) {
	cases := []struct {
		from, to, threshold int
		before, after       int
	}{
		{0, 100, 50, 50, 50},
		{60, 100, 50, 0, 40},
		{0, 40, 50, 40, 0},
		{100, 0, 50, 0, 0},
		{50, 50, 50, 0, 0},
	}
	for _, c := range cases {
		b, a := splitAt(c.from, c.to, c.threshold)
		assert.Equal(t, c.before, b, "%+v", c)
		assert.Equal(t, c.after, a, "%+v", c)
	}
}

func TestSplitDay_FullDefaultDay(t *testing.T) {
	// 08:15-13:15 and 13:45-18:45 are two five hour segments
	split := SplitDay(monday, s("08:15"), s("13:15"), s("13:45"), s("18:45"))

	assert.Equal(t, 600, split.NormalMinutes)
	assert.Zero(t, split.OvertimeMinutes)
}

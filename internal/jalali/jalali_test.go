package jalali

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ptime "github.com/yaa110/go-persian-calendar"
)

func TestFromTime_KnownDate(t *testing.T) {
	// 2024-03-20 is Nowruz: 1403/01/01.
	g := time.Date(2024, time.March, 20, 12, 0, 0, 0, ptime.Iran())
	d := FromTime(g)

	assert.Equal(t, Date{Year: 1403, Month: 1, Day: 1}, d)
}

func TestRoundTrip_JalaliToGregorianAndBack(t *testing.T) {
	dates := []Date{
		{Year: 1402, Month: 1, Day: 1},
		{Year: 1402, Month: 6, Day: 31},
		{Year: 1402, Month: 12, Day: 29},
		{Year: 1403, Month: 12, Day: 30}, // leap Esfand
		{Year: 1405, Month: 7, Day: 15},
	}

	for _, d := range dates {
		g, err := ToTime(d)
		require.NoError(t, err, "ToTime(%v)", d)
		assert.Equal(t, d, FromTime(g), "round trip %v", d)
	}
}

func TestRoundTrip_GregorianToJalaliAndBack(t *testing.T) {
	for _, g := range []time.Time{
		time.Date(2023, time.March, 21, 0, 0, 0, 0, ptime.Iran()),
		time.Date(2024, time.December, 31, 0, 0, 0, 0, ptime.Iran()),
		time.Date(2026, time.August, 29, 0, 0, 0, 0, ptime.Iran()),
	} {
		d := FromTime(g)
		back, err := ToTime(d)
		require.NoError(t, err)

		y1, m1, day1 := g.Date()
		y2, m2, day2 := back.In(ptime.Iran()).Date()
		assert.Equal(t, y1, y2)
		assert.Equal(t, m1, m2)
		assert.Equal(t, day1, day2)
	}
}

func TestMonthDays(t *testing.T) {
	tests := []struct {
		year, month int
		want        int
	}{
		{1402, 1, 31},
		{1402, 6, 31},
		{1402, 7, 30},
		{1402, 11, 30},
	}
	for _, tt := range tests {
		got, err := MonthDays(tt.year, tt.month)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "MonthDays(%d, %d)", tt.year, tt.month)
	}
}

func TestMonthDays_EsfandFollowsLeapRule(t *testing.T) {
	// Esfand length must agree with the calendar library's leap-year rule
	// rather than a hardcoded table.
	for _, year := range []int{1399, 1402, 1403, 1404, 1408} {
		got, err := MonthDays(year, 12)
		require.NoError(t, err)

		want := 29
		if IsLeap(year) {
			want = 30
		}
		assert.Equal(t, want, got, "Esfand %d", year)
	}

	// 1402 is a common year and 1403 is a leap year in the 33-year cycle.
	days1402, err := MonthDays(1402, 12)
	require.NoError(t, err)
	days1403, err := MonthDays(1403, 12)
	require.NoError(t, err)
	assert.Equal(t, 29, days1402)
	assert.Equal(t, 30, days1403)
}

func TestMonthDays_InvalidMonth(t *testing.T) {
	_, err := MonthDays(1402, 0)
	assert.Error(t, err)
	_, err = MonthDays(1402, 13)
	assert.Error(t, err)
}

func TestParse(t *testing.T) {
	d, err := Parse("1402/12/29")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 1402, Month: 12, Day: 29}, d)

	_, err = Parse("1402/12/30") // 1402 Esfand has 29 days
	assert.Error(t, err)

	_, err = Parse("not-a-date")
	assert.Error(t, err)
}

func TestString(t *testing.T) {
	assert.Equal(t, "1402/01/05", Date{Year: 1402, Month: 1, Day: 5}.String())
}

func TestMonthName(t *testing.T) {
	name, err := MonthName(1)
	require.NoError(t, err)
	assert.Equal(t, "فروردین", name)

	name, err = MonthName(12)
	require.NoError(t, err)
	assert.Equal(t, "اسفند", name)

	_, err = MonthName(0)
	assert.Error(t, err)
}

func TestWeekdayName(t *testing.T) {
	// 1403/01/01 fell on 2024-03-20, a Wednesday (چهارشنبه).
	name, err := WeekdayName(Date{Year: 1403, Month: 1, Day: 1})
	require.NoError(t, err)
	assert.Equal(t, "چهارشنبه", name)
}

func TestMonthRange(t *testing.T) {
	start, end, err := MonthRange(1403, 1)
	require.NoError(t, err)

	assert.Equal(t, Date{Year: 1403, Month: 1, Day: 1}, FromTime(start))
	assert.Equal(t, Date{Year: 1403, Month: 1, Day: 31}, FromTime(end))
	assert.True(t, end.After(start))
}

func TestToTime_Invalid(t *testing.T) {
	_, err := ToTime(Date{Year: 1402, Month: 13, Day: 1})
	assert.Error(t, err)

	_, err = ToTime(Date{Year: 1402, Month: 7, Day: 31})
	assert.Error(t, err)
}

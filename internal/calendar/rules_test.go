package calendar

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsLeapYear(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		year int
		want bool
	}{
		{1900, false}, // divisible by 100 but not 400
		{2000, true},  // divisible by 400
		{2004, true},
		{2007, false},
		{2012, true},
		{2015, false},
		{2020, true},
		{2021, false},
		{2100, false},
		{2400, true},
	}

	for _, tc := range testCases {
		require.Equal(t, tc.want, IsLeapYear(tc.year), "year %d", tc.year)
	}
}

func TestDaysInMonth(t *testing.T) {
	t.Parallel()

	common := []int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	for i, want := range common {
		month := i + 1
		require.Equal(t, want, DaysInMonth(month, false), "month %d in a common year", month)

		if month == 2 {
			want = 29
		}
		require.Equal(t, want, DaysInMonth(month, true), "month %d in a leap year", month)
	}

	t.Run("out of range months have no days", func(t *testing.T) {
		t.Parallel()
		require.Zero(t, DaysInMonth(0, false))
		require.Zero(t, DaysInMonth(13, true))
		require.Zero(t, DaysInMonth(-4, false))
	})
}

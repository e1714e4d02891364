package config

import (
	"testing"

	"github.com/specialistvlad/daysbetween/internal/calendar"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	m := Default()

	require.NoError(t, m.Validate())
	require.Equal(t, calendar.MinYear, m.Calendar.MinYear)
	require.Equal(t, calendar.MaxYear, m.Calendar.MaxYear)
	require.Equal(t, DefaultPrompt, m.Console.Prompt)
	require.Equal(t, []string{"to", "and"}, m.Console.Separators)
	require.Zero(t, m.HTTP.Port)

	cal, err := m.NewCalendar()
	require.NoError(t, err)
	require.Equal(t, calendar.Default, cal)
}

func TestDefault_DoesNotShareSeparators(t *testing.T) {
	t.Parallel()

	m := Default()
	m.Console.Separators[0] = "until"

	require.Equal(t, "to", Default().Console.Separators[0])
}

func TestValidate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		mutate  func(m *Model)
		wantErr string
	}{
		{
			name:    "inverted year range",
			mutate:  func(m *Model) { m.Calendar.MinYear, m.Calendar.MaxYear = 2000, 1999 },
			wantErr: "min year 2000 is after max year 1999",
		},
		{
			name:    "non-positive min year",
			mutate:  func(m *Model) { m.Calendar.MinYear = 0 },
			wantErr: "min year must be positive",
		},
		{
			name:    "port out of range",
			mutate:  func(m *Model) { m.HTTP.Port = 70000 },
			wantErr: "http port must be between 0 and 65535",
		},
		{
			name:    "zero rate limit",
			mutate:  func(m *Model) { m.HTTP.RateLimit = 0 },
			wantErr: "http rate limit must be positive",
		},
		{
			name:    "zero burst",
			mutate:  func(m *Model) { m.HTTP.Burst = 0 },
			wantErr: "http burst must be at least 1",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			m := Default()
			tc.mutate(m)

			err := m.Validate()
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

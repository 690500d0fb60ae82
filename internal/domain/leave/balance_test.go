package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDaysRequested(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		dayType DayType
		want    float64
		wantErr error
	}{
		{"full three days", "2024-03-01", "2024-03-03", DayTypeFull, 3, nil},
		{"full single day", "2024-03-01", "2024-03-01", DayTypeFull, 1, nil},
		{"full across month boundary", "2024-03-30", "2024-04-02", DayTypeFull, 4, nil},
		{"half single day", "2024-03-01", "2024-03-01", DayTypeHalf, 0.5, nil},
		{"half over a span", "2024-03-01", "2024-03-02", DayTypeHalf, 0, ErrInvalidLeaveRange},
		{"inverted range", "2024-03-05", "2024-03-01", DayTypeFull, 0, ErrInvalidLeaveRange},
		{"unknown day type", "2024-03-01", "2024-03-01", DayType("quarter"), 0, ErrInvalidLeaveRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DaysRequested(d(tt.from), d(tt.to), tt.dayType)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDaysRequestedIgnoresTimeOfDay(t *testing.T) {
	from := time.Date(2024, 3, 1, 23, 30, 0, 0, time.UTC)
	to := time.Date(2024, 3, 2, 0, 15, 0, 0, time.UTC)

	got, err := DaysRequested(from, to, DayTypeFull)
	require.NoError(t, err)
	assert.Equal(t, float64(2), got)
}

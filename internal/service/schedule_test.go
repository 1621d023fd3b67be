package service

import (
	"testing"
	"time"

	"github.com/fanadium/backend/internal/dto"
	"github.com/fanadium/backend/internal/model"
	"github.com/stretchr/testify/require"
)

func TestScheduledInstant(t *testing.T) {
	tests := []struct {
		name string
		date string
		time string
		want time.Time
	}{
		{
			name: "with UTC suffix",
			date: "2025-07-14",
			time: "15:00 UTC",
			want: time.Date(2025, 7, 14, 15, 0, 0, 0, time.UTC),
		},
		{
			name: "bare wall clock is UTC",
			date: "2025-07-14",
			time: "15:00",
			want: time.Date(2025, 7, 14, 15, 0, 0, 0, time.UTC),
		},
		{
			name: "with seconds",
			date: "2026-06-01",
			time: "20:00:30",
			want: time.Date(2026, 6, 1, 20, 0, 30, 0, time.UTC),
		},
		{
			name: "surrounding whitespace",
			date: "2026-06-01",
			time: " 20:00 UTC ",
			want: time.Date(2026, 6, 1, 20, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			instant, err := ScheduledInstant(model.Event{Date: tt.date, Time: tt.time})
			require.NoError(t, err)
			require.True(t, instant.Equal(tt.want))
		})
	}
}

func TestScheduledInstantInvalid(t *testing.T) {
	tests := []struct {
		name string
		date string
		time string
	}{
		{name: "empty", date: "", time: ""},
		{name: "garbage time", date: "2025-07-14", time: "soon"},
		{name: "garbage date", date: "someday", time: "15:00"},
		{name: "wrong date layout", date: "14/07/2025", time: "15:00 UTC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ScheduledInstant(model.Event{Date: tt.date, Time: tt.time})
			require.ErrorIs(t, err, dto.ErrInvalidSchedule)
		})
	}
}

func TestWindow(t *testing.T) {
	event := model.Event{Date: "2025-07-14", Time: "15:00 UTC"}

	state, err := Window(event, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Equal(t, model.WindowPending, state)
	require.True(t, state.AllowsMutations())

	// The scheduled instant itself is already live.
	state, err = Window(event, time.Date(2025, 7, 14, 15, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Equal(t, model.WindowLive, state)
	require.False(t, state.AllowsMutations())

	state, err = Window(event, time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Equal(t, model.WindowLive, state)
}

func TestWindowInvalidScheduleFailsLoudly(t *testing.T) {
	_, err := Window(model.Event{Date: "bad", Time: "data"}, time.Now())
	require.ErrorIs(t, err, dto.ErrInvalidSchedule)
}

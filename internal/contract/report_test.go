package contract

import (
	"testing"
	"time"

	"github.com/alexanderramin/atajados/internal/domain"
	"github.com/alexanderramin/atajados/internal/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScheduleView_SortsAndPadsWindow(t *testing.T) {
	d := func(s string) time.Time {
		v, err := domain.ParseDate(s)
		require.NoError(t, err)
		return v
	}
	milestones := []*domain.Milestone{
		{ID: 1, Name: "Entrega", Date: d("2024-06-30")},
		{ID: 2, Name: "Inicio", Date: d("2024-01-02")},
	}

	v := NewScheduleView(schedule.Build(milestones, nil, nil), time.Date(2024, 3, 1, 15, 4, 0, 0, time.UTC))
	require.True(t, v.HasWindow())
	assert.Equal(t, "Inicio", v.Sorted[0].Label)
	assert.True(t, d("2024-01-01").Equal(v.From))
	assert.True(t, d("2024-07-01").Equal(v.To))
	assert.True(t, d("2024-03-01").Equal(v.Today), "today is truncated to a calendar date")
}

func TestNewScheduleView_Empty(t *testing.T) {
	v := NewScheduleView(schedule.Build(nil, nil, nil), time.Now())
	assert.False(t, v.HasWindow())
	assert.True(t, v.From.IsZero())
}

package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rebecacoelho/nlw-setup/pkg/entity"
)

type CreateHabitRequest struct {
	Title    string `validate:"required"`
	WeekDays []int  `validate:"dive,gte=0,lte=6"`
}

// DayOverview pairs the habits schedulable on a date with the ids already
// completed on it. Completion is independent of schedulability: an id may
// appear in CompletedHabits without its habit being in PossibleHabits.
type DayOverview struct {
	PossibleHabits  []*entity.Habit `json:"possibleHabits"`
	CompletedHabits []uuid.UUID     `json:"completedHabits"`
}

type ToggleResult int

const (
	HabitCompleted ToggleResult = iota
	HabitUncompleted
)

type HabitsServiceI interface {
	// Validates the request, stamps created_at with today's day boundary and
	// persists the habit with its weekday set
	CreateHabit(ctx context.Context, req *CreateHabitRequest) (*entity.Habit, error)
	// Lists the whole catalog
	GetHabits(ctx context.Context) ([]*entity.Habit, error)
}

type DaysServiceI interface {
	// Resolves possible and completed habits for the date's day boundary
	GetDay(ctx context.Context, date time.Time) (*DayOverview, error)
	// Flips the completion of habitID on today's day, creating the day row
	// lazily on first use
	ToggleHabit(ctx context.Context, habitID uuid.UUID) (ToggleResult, error)
}

type SummaryServiceI interface {
	// Reports completed/amount counts for every recorded day, date ascending
	GetSummary(ctx context.Context) ([]entity.DaySummary, error)
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

type Habit struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	WeekDays  []int     `json:"week_days"`
}

// Day exists only for dates that saw at least one completion; it is created
// lazily on the first toggle and never deleted afterwards.
type Day struct {
	ID   uuid.UUID `json:"id"`
	Date time.Time `json:"date"`
}

type DaySummary struct {
	DayID     uuid.UUID `json:"dayId"`
	Date      time.Time `json:"date"`
	Completed int       `json:"completed"`
	Amount    int       `json:"amount"`
}

package errorvalues

import "errors"

var (
	ErrEmptyTitle         = errors.New("habit title must not be empty")
	ErrWeekDayOutOfRange  = errors.New("week day must be in range [0,6]")
	ErrHabitNotFound      = errors.New("habit doesn't exist")
	ErrCompletionExists   = errors.New("habit already completed on this day")
	ErrCompletionNotFound = errors.New("habit isn't completed on this day")
)

package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/rebecacoelho/nlw-setup/internal/error_values"
	"github.com/rebecacoelho/nlw-setup/internal/repository"
	"github.com/rebecacoelho/nlw-setup/pkg/dayclock"
)

type DaysService struct {
	habitsRepo repository.HabitsRepositoryI
	daysRepo   repository.DaysRepositoryI
}

func NewDaysService(habitsRepo repository.HabitsRepositoryI, daysRepo repository.DaysRepositoryI) *DaysService {
	if habitsRepo == nil || daysRepo == nil {
		log.Fatal("on days service provided nil repos")
	}
	return &DaysService{
		habitsRepo: habitsRepo,
		daysRepo:   daysRepo,
	}
}

func (serv *DaysService) GetDay(ctx context.Context, date time.Time) (*DayOverview, error) {
	day := dayclock.DayBoundary(date)
	possible, err := serv.habitsRepo.GetPossibleOn(ctx, day, dayclock.WeekdayIndex(day))
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	completed, err := serv.daysRepo.GetCompletedOn(ctx, day)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return &DayOverview{
		PossibleHabits:  possible,
		CompletedHabits: completed,
	}, nil
}

// ToggleHabit flips the completion of habitID on today's day. The flip is an
// optimistic insert: a unique violation means the record is there, so it is
// removed instead. Two racing toggles serialize into create-then-delete
// rather than a double create.
func (serv *DaysService) ToggleHabit(ctx context.Context, habitID uuid.UUID) (ToggleResult, error) {
	exists, err := serv.habitsRepo.Exists(ctx, habitID)
	if err != nil {
		return 0, errors.New("repository error: " + err.Error())
	}
	if !exists {
		return 0, errorvalues.ErrHabitNotFound
	}
	today := dayclock.DayBoundary(time.Now())
	day, err := serv.daysRepo.GetOrCreate(ctx, today)
	if err != nil {
		return 0, errors.New("repository error: " + err.Error())
	}
	err = serv.daysRepo.CreateCompletion(ctx, day.ID, habitID)
	if err == nil {
		return HabitCompleted, nil
	}
	switch {
	case errors.Is(err, errorvalues.ErrCompletionExists):
		// Already completed, flip it off
		err = serv.daysRepo.DeleteCompletion(ctx, day.ID, habitID)
		if err != nil && !errors.Is(err, errorvalues.ErrCompletionNotFound) {
			return 0, errors.New("repository error: " + err.Error())
		}
		return HabitUncompleted, nil
	case errors.Is(err, errorvalues.ErrHabitNotFound):
		return 0, err
	default:
		return 0, errors.New("repository error: " + err.Error())
	}
}

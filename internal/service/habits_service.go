package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"

	errorvalues "github.com/rebecacoelho/nlw-setup/internal/error_values"
	"github.com/rebecacoelho/nlw-setup/internal/repository"
	"github.com/rebecacoelho/nlw-setup/pkg/dayclock"
	"github.com/rebecacoelho/nlw-setup/pkg/entity"
)

type HabitsService struct {
	repo repository.HabitsRepositoryI
}

func NewHabitsService(habitsRepo repository.HabitsRepositoryI) *HabitsService {
	if habitsRepo == nil {
		log.Fatal("provided nil habitsRepo")
	}
	return &HabitsService{
		repo: habitsRepo,
	}
}

func (hs *HabitsService) CreateHabit(ctx context.Context, req *CreateHabitRequest) (*entity.Habit, error) {
	if err := validate.Struct(req); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) && len(vErrs) > 0 {
			if vErrs[0].Field() == "Title" {
				return nil, errorvalues.ErrEmptyTitle
			}
			return nil, errorvalues.ErrWeekDayOutOfRange
		}
		return nil, errors.New("validating habit request error: " + err.Error())
	}
	h := entity.Habit{
		Title:     req.Title,
		CreatedAt: dayclock.DayBoundary(time.Now()),
		WeekDays:  dedupWeekDays(req.WeekDays),
	}
	id, err := hs.repo.Create(ctx, &h)
	if err != nil {
		return nil, errors.New("habits repository error: " + err.Error())
	}
	h.ID = id
	return &h, nil
}

func (hs *HabitsService) GetHabits(ctx context.Context) ([]*entity.Habit, error) {
	habits, err := hs.repo.GetAll(ctx)
	if err != nil {
		return nil, errors.New("habits repository error: " + err.Error())
	}
	return habits, nil
}

// Weekdays are unique within a habit; duplicates in the request collapse to
// one row, first occurrence order kept.
func dedupWeekDays(weekDays []int) []int {
	seen := make(map[int]struct{}, len(weekDays))
	result := make([]int, 0, len(weekDays))
	for _, weekDay := range weekDays {
		if _, ok := seen[weekDay]; ok {
			continue
		}
		seen[weekDay] = struct{}{}
		result = append(result, weekDay)
	}
	return result
}

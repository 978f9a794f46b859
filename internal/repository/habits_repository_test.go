package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"

	"github.com/rebecacoelho/nlw-setup/internal/repository"
	"github.com/rebecacoelho/nlw-setup/pkg/entity"
)

func TestCreateHabit(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewHabitsRepoWithConn(mock)
	habit := entity.Habit{
		Title:     "Exercise",
		CreatedAt: time.Date(2023, 1, 9, 0, 0, 0, 0, time.UTC),
		WeekDays:  []int{1, 3, 5},
	}
	hid := uuid.New()
	ctx := context.Background()
	insertHabit := regexp.QuoteMeta(`INSERT INTO habits (title, created_at) VALUES ($1, $2) RETURNING id;`)
	insertWeekDay := regexp.QuoteMeta(`INSERT INTO habit_week_days (habit_id, week_day) VALUES ($1, $2);`)
	t.Run("successfully created", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(insertHabit).
			WithArgs(habit.Title, habit.CreatedAt).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(hid))
		for _, weekDay := range habit.WeekDays {
			mock.ExpectExec(insertWeekDay).
				WithArgs(hid, weekDay).
				WillReturnResult(pgxmock.NewResult("INSERT", 1))
		}
		mock.ExpectCommit()
		id, err := repo.Create(ctx, &habit)
		assert.NoError(t, err)
		assert.Equal(t, hid, id)
	})
	t.Run("empty weekday set writes no weekday rows", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(insertHabit).
			WithArgs("Meditate", habit.CreatedAt).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(hid))
		mock.ExpectCommit()
		id, err := repo.Create(ctx, &entity.Habit{
			Title:     "Meditate",
			CreatedAt: habit.CreatedAt,
			WeekDays:  []int{},
		})
		assert.NoError(t, err)
		assert.Equal(t, hid, id)
	})
	t.Run("habit insert error rolls back", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(insertHabit).
			WithArgs(habit.Title, habit.CreatedAt).
			WillReturnError(errors.New("db error"))
		mock.ExpectRollback()
		_, err := repo.Create(ctx, &habit)
		assert.Error(t, err)
	})
	t.Run("weekday insert error rolls back", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(insertHabit).
			WithArgs(habit.Title, habit.CreatedAt).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(hid))
		mock.ExpectExec(insertWeekDay).
			WithArgs(hid, habit.WeekDays[0]).
			WillReturnError(errors.New("db error"))
		mock.ExpectRollback()
		_, err := repo.Create(ctx, &habit)
		assert.Error(t, err)
	})
}

func TestGetPossibleOn(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewHabitsRepoWithConn(mock)
	date := time.Date(2023, 1, 9, 0, 0, 0, 0, time.UTC)
	weekDay := 1
	habits := []*entity.Habit{
		{
			ID:        uuid.New(),
			Title:     "Exercise",
			CreatedAt: time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC),
			WeekDays:  []int{1, 3, 5},
		},
		{
			ID:        uuid.New(),
			Title:     "Read",
			CreatedAt: time.Date(2023, 1, 9, 0, 0, 0, 0, time.UTC),
			WeekDays:  []int{1},
		},
	}
	query := regexp.QuoteMeta(`SELECT h.id, h.title, h.created_at, array_agg(hwd.week_day ORDER BY hwd.week_day) AS week_days
		FROM habits h
		JOIN habit_week_days hwd ON hwd.habit_id = h.id
		WHERE h.created_at <= $1
		AND EXISTS (SELECT 1 FROM habit_week_days w WHERE w.habit_id = h.id AND w.week_day = $2)
		GROUP BY h.id, h.title, h.created_at
		ORDER BY h.created_at, h.id;`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "title", "created_at", "week_days"})
		for _, h := range habits {
			rows.AddRow(h.ID, h.Title, h.CreatedAt, h.WeekDays)
		}
		mock.ExpectQuery(query).
			WithArgs(date, weekDay).
			WillReturnRows(rows)
		result, err := repo.GetPossibleOn(ctx, date, weekDay)
		assert.NoError(t, err)
		assert.Equal(t, len(habits), len(result))
		for i := range result {
			assert.Equal(t, *habits[i], *result[i])
		}
	})
	t.Run("no schedulable habits", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(date, weekDay).
			WillReturnRows(pgxmock.NewRows([]string{"id", "title", "created_at", "week_days"}))
		result, err := repo.GetPossibleOn(ctx, date, weekDay)
		assert.NoError(t, err)
		assert.Empty(t, result)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(date, weekDay).
			WillReturnError(errors.New("db error"))
		_, err := repo.GetPossibleOn(ctx, date, weekDay)
		assert.Error(t, err)
	})
}

func TestGetAllHabits(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewHabitsRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT h.id, h.title, h.created_at, COALESCE(array_agg(hwd.week_day ORDER BY hwd.week_day) FILTER (WHERE hwd.week_day IS NOT NULL), '{}') AS week_days
		FROM habits h
		LEFT JOIN habit_week_days hwd ON hwd.habit_id = h.id
		GROUP BY h.id, h.title, h.created_at
		ORDER BY h.created_at, h.id;`)
	habit := entity.Habit{
		ID:        uuid.New(),
		Title:     "Exercise",
		CreatedAt: time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC),
		WeekDays:  []int{1, 3, 5},
	}
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).
			WillReturnRows(pgxmock.NewRows([]string{"id", "title", "created_at", "week_days"}).
				AddRow(habit.ID, habit.Title, habit.CreatedAt, habit.WeekDays))
		result, err := repo.GetAll(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 1, len(result))
		assert.Equal(t, habit, *result[0])
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WillReturnError(errors.New("db error"))
		_, err := repo.GetAll(ctx)
		assert.Error(t, err)
	})
}

func TestHabitExists(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewHabitsRepoWithConn(mock)
	id := uuid.New()
	query := regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM habits WHERE id = $1);`)
	ctx := context.Background()
	t.Run("exists", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(id).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
		exists, err := repo.Exists(ctx, id)
		assert.NoError(t, err)
		assert.True(t, exists)
	})
	t.Run("doesn't exist", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(id).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
		exists, err := repo.Exists(ctx, id)
		assert.NoError(t, err)
		assert.False(t, exists)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(id).
			WillReturnError(errors.New("db error"))
		_, err := repo.Exists(ctx, id)
		assert.Error(t, err)
	})
}

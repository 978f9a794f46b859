package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rebecacoelho/nlw-setup/pkg/cleanup"
	"github.com/rebecacoelho/nlw-setup/pkg/entity"
)

type HabitsRepository struct {
	conn PgConnection
}

func NewHabitsRepo(cfg DBConfig) *HabitsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for habitsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for habitsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing habits pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &HabitsRepository{
		conn: pool,
	}
}

func NewHabitsRepoWithConn(conn PgConnection) *HabitsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for habitsRepo: " + err.Error())
	}
	return &HabitsRepository{
		conn: conn,
	}
}

// Create inserts the habit row and one habit_week_days row per weekday in a
// single transaction, so a habit without its weekday set is never observable.
func (hr *HabitsRepository) Create(ctx context.Context, habit *entity.Habit) (uuid.UUID, error) {
	tx, err := hr.conn.Begin(ctx)
	if err != nil {
		return uuid.UUID{}, errors.New("opening tx for habit creation error: " + err.Error())
	}
	defer tx.Rollback(ctx)
	var id uuid.UUID
	row := tx.QueryRow(ctx, `INSERT INTO habits (title, created_at) VALUES ($1, $2) RETURNING id;`,
		habit.Title,
		habit.CreatedAt,
	)
	if err := row.Scan(&id); err != nil {
		return uuid.UUID{}, errors.New("creating habit db error: " + err.Error())
	}
	for _, weekDay := range habit.WeekDays {
		_, err = tx.Exec(ctx, `INSERT INTO habit_week_days (habit_id, week_day) VALUES ($1, $2);`, id, weekDay)
		if err != nil {
			return uuid.UUID{}, errors.New("creating habit week day db error: " + err.Error())
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return uuid.UUID{}, errors.New("committing habit creation error: " + err.Error())
	}
	return id, nil
}

// GetPossibleOn expects date already truncated to its day boundary and
// weekDay derived from the same date (Sunday = 0).
func (hr *HabitsRepository) GetPossibleOn(ctx context.Context, date time.Time, weekDay int) ([]*entity.Habit, error) {
	habits := make([]*entity.Habit, 0)
	rows, err := hr.conn.Query(ctx, `SELECT h.id, h.title, h.created_at, array_agg(hwd.week_day ORDER BY hwd.week_day) AS week_days
		FROM habits h
		JOIN habit_week_days hwd ON hwd.habit_id = h.id
		WHERE h.created_at <= $1
		AND EXISTS (SELECT 1 FROM habit_week_days w WHERE w.habit_id = h.id AND w.week_day = $2)
		GROUP BY h.id, h.title, h.created_at
		ORDER BY h.created_at, h.id;`, date, weekDay)
	if err != nil {
		return nil, errors.New("getting possible habits error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		h := entity.Habit{}
		err = rows.Scan(&h.ID, &h.Title, &h.CreatedAt, &h.WeekDays)
		if err != nil {
			return nil, errors.New("unmarshalling habit error: " + err.Error())
		}
		habits = append(habits, &h)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return habits, nil
}

func (hr *HabitsRepository) GetAll(ctx context.Context) ([]*entity.Habit, error) {
	habits := make([]*entity.Habit, 0)
	rows, err := hr.conn.Query(ctx, `SELECT h.id, h.title, h.created_at, COALESCE(array_agg(hwd.week_day ORDER BY hwd.week_day) FILTER (WHERE hwd.week_day IS NOT NULL), '{}') AS week_days
		FROM habits h
		LEFT JOIN habit_week_days hwd ON hwd.habit_id = h.id
		GROUP BY h.id, h.title, h.created_at
		ORDER BY h.created_at, h.id;`)
	if err != nil {
		return nil, errors.New("getting habits error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		h := entity.Habit{}
		err = rows.Scan(&h.ID, &h.Title, &h.CreatedAt, &h.WeekDays)
		if err != nil {
			return nil, errors.New("unmarshalling habit error: " + err.Error())
		}
		habits = append(habits, &h)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return habits, nil
}

func (hr *HabitsRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	row := hr.conn.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM habits WHERE id = $1);`, id)
	if err := row.Scan(&exists); err != nil {
		return false, errors.New("inspecting if habit exists error: " + err.Error())
	}
	return exists, nil
}

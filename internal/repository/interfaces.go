package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/rebecacoelho/nlw-setup/pkg/entity"
)

type HabitsRepositoryI interface {
	// Creates new habit together with its weekday rows. The habit and the
	// weekday set are written in one transaction
	Create(ctx context.Context, habit *entity.Habit) (uuid.UUID, error)
	// Lists habits schedulable on date: created on or before it and carrying
	// weekDay in their set. Ordered by (created_at, id)
	GetPossibleOn(ctx context.Context, date time.Time, weekDay int) ([]*entity.Habit, error)
	// Lists every habit in the catalog
	GetAll(ctx context.Context) ([]*entity.Habit, error)
	// Inspects if habit with id exists. Used to validate toggle targets
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type DaysRepositoryI interface {
	// Finds the day row for date or creates it. Safe under concurrent
	// callers: at most one row per date ever exists
	GetOrCreate(ctx context.Context, date time.Time) (*entity.Day, error)
	// Point lookup by exact date. Returns (nil, nil) when the day is absent
	GetByDate(ctx context.Context, date time.Time) (*entity.Day, error)
	// Marks habitID completed on dayID
	CreateCompletion(ctx context.Context, dayID, habitID uuid.UUID) error
	// Removes the completion of habitID on dayID
	DeleteCompletion(ctx context.Context, dayID, habitID uuid.UUID) error
	// Lists habit ids completed on date; empty when no day row exists
	GetCompletedOn(ctx context.Context, date time.Time) ([]uuid.UUID, error)
	// Computes completed/amount per recorded day in a single query
	GetSummary(ctx context.Context) ([]entity.DaySummary, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}

package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	errorvalues "github.com/rebecacoelho/nlw-setup/internal/error_values"
	"github.com/rebecacoelho/nlw-setup/pkg/cleanup"
	"github.com/rebecacoelho/nlw-setup/pkg/entity"
)

type DaysRepository struct {
	conn PgConnection
}

func NewDaysRepo(cfg DBConfig) *DaysRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for daysRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for daysRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing days pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &DaysRepository{
		conn: pool,
	}
}

func NewDaysRepoWithConn(conn PgConnection) *DaysRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for daysRepo: " + err.Error())
	}
	return &DaysRepository{
		conn: conn,
	}
}

// GetOrCreate inserts optimistically and recovers on the unique(date)
// violation by re-fetching, so two racing callers end up with the same row.
func (dr *DaysRepository) GetOrCreate(ctx context.Context, date time.Time) (*entity.Day, error) {
	var day entity.Day
	row := dr.conn.QueryRow(ctx, `INSERT INTO days (date) VALUES ($1) RETURNING id, date;`, date)
	err := row.Scan(&day.ID, &day.Date)
	if err == nil {
		return &day, nil
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return nil, errors.New("creating day error: " + err.Error())
	}
	// Lost the insert race, the row is there now
	existing, err := dr.GetByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.New("day missing after unique conflict on date")
	}
	return existing, nil
}

func (dr *DaysRepository) GetByDate(ctx context.Context, date time.Time) (*entity.Day, error) {
	var day entity.Day
	row := dr.conn.QueryRow(ctx, `SELECT id, date FROM days WHERE date = $1;`, date)
	if err := row.Scan(&day.ID, &day.Date); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("getting day by date error: " + err.Error())
	}
	return &day, nil
}

func (dr *DaysRepository) CreateCompletion(ctx context.Context, dayID, habitID uuid.UUID) error {
	_, err := dr.conn.Exec(
		ctx,
		`INSERT INTO day_habits (day_id, habit_id) VALUES ($1, $2);`,
		dayID,
		habitID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return errorvalues.ErrCompletionExists
			// FK violation
			case "23503":
				return errorvalues.ErrHabitNotFound
			}
		}
		return errors.New("creating completion error: " + err.Error())
	}
	return nil
}

func (dr *DaysRepository) DeleteCompletion(ctx context.Context, dayID, habitID uuid.UUID) error {
	ct, err := dr.conn.Exec(
		ctx,
		`DELETE FROM day_habits WHERE day_id = $1 AND habit_id = $2;`,
		dayID,
		habitID,
	)
	if err != nil {
		return errors.New("deleting completion error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrCompletionNotFound
	}
	return nil
}

func (dr *DaysRepository) GetCompletedOn(ctx context.Context, date time.Time) ([]uuid.UUID, error) {
	completed := make([]uuid.UUID, 0)
	rows, err := dr.conn.Query(
		ctx,
		`SELECT dh.habit_id FROM day_habits dh JOIN days d ON d.id = dh.day_id WHERE d.date = $1;`,
		date,
	)
	if err != nil {
		return nil, errors.New("getting completed habits error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		var habitID uuid.UUID
		if err := rows.Scan(&habitID); err != nil {
			return nil, errors.New("completion row parsing error: " + err.Error())
		}
		completed = append(completed, habitID)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected completion rows error: " + rows.Err().Error())
	}
	return completed, nil
}

// GetSummary scans full history in one round trip. The weekday in SQL is
// EXTRACT(DOW), Sunday = 0, the same convention as dayclock.WeekdayIndex,
// so amount agrees with GetPossibleOn for every stored date.
func (dr *DaysRepository) GetSummary(ctx context.Context) ([]entity.DaySummary, error) {
	summary := make([]entity.DaySummary, 0)
	rows, err := dr.conn.Query(ctx, `SELECT d.id, d.date,
		(SELECT COUNT(*) FROM day_habits dh WHERE dh.day_id = d.id) AS completed,
		(SELECT COUNT(*)
			FROM habit_week_days hwd
			JOIN habits h ON h.id = hwd.habit_id
			WHERE hwd.week_day = EXTRACT(DOW FROM d.date)::int
			AND h.created_at <= d.date) AS amount
		FROM days d
		ORDER BY d.date;`)
	if err != nil {
		return nil, errors.New("getting summary error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		s := entity.DaySummary{}
		if err := rows.Scan(&s.DayID, &s.Date, &s.Completed, &s.Amount); err != nil {
			return nil, errors.New("summary row parsing error: " + err.Error())
		}
		summary = append(summary, s)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected summary rows error: " + rows.Err().Error())
	}
	return summary, nil
}

package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	errorvalues "github.com/rebecacoelho/nlw-setup/internal/error_values"
	"github.com/rebecacoelho/nlw-setup/internal/service"
	"github.com/rebecacoelho/nlw-setup/pkg/entity"
	"github.com/rebecacoelho/nlw-setup/pkg/httputil"
)

type CreateHabitRequest struct {
	Title    string `json:"title"`
	WeekDays []int  `json:"weekDays"`
}

type ToggleHabitResponse struct {
	Completed bool `json:"completed"`
}

type GetHabitsResponse struct {
	Habits []*entity.Habit `json:"habits"`
}

// @Summary Create a habit with its weekday schedule
// @Router /habits [post]
func (s *Server) CreateHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req CreateHabitRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create habit error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	habit, err := s.habitsService.CreateHabit(ctx, &service.CreateHabitRequest{
		Title:    req.Title,
		WeekDays: req.WeekDays,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrEmptyTitle):
			logger.Error("create habit error: empty title")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "habit title must not be empty", nil)
		case errors.Is(err, errorvalues.ErrWeekDayOutOfRange):
			logger.Error("create habit error: week day out of range")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "week days must be in range [0,6]", nil)
		default:
			logger.Error("create habit error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating habit", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{"habit_id": habit.ID.String()})
	logger.Info("habit created")
}

// @Summary List every habit in the catalog
// @Router /habits [get]
func (s *Server) GetHabits(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	habits, err := s.habitsService.GetHabits(ctx)
	if err != nil {
		logger.Error("getting habits list error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting habits list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetHabitsResponse{
		Habits: habits,
	})
	logger.Info("habits provided")
}

// @Summary Possible and completed habits for a date
// @Router /day [get]
func (s *Server) GetDay(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	date, err := parseDateParam(r.URL.Query().Get("date"))
	if err != nil {
		logger.Error("get day error: invalid date param")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date query param", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	overview, err := s.daysService.GetDay(ctx, date)
	if err != nil {
		logger.Error("get day error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting day", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, overview)
	logger.Info("day provided")
}

// @Summary Flip a habit's completion on today's day
// @Router /habits/{id}/toggle [patch]
func (s *Server) ToggleHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		// Malformed ids are indistinguishable from unknown habits to the caller
		logger.Error("toggle habit error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "habit doesn't exist", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	result, err := s.daysService.ToggleHabit(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrHabitNotFound):
			logger.Error("toggle habit error: unexist habit")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "habit doesn't exist", nil)
		default:
			logger.Error("toggle habit error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while toggling habit", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ToggleHabitResponse{
		Completed: result == service.HabitCompleted,
	})
	logger.Info("habit toggled")
}

// @Summary Per-day completion history
// @Router /summary [get]
func (s *Server) GetSummary(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	summary, err := s.summaryService.GetSummary(ctx)
	if err != nil {
		logger.Error("getting summary error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting summary", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, summary)
	logger.Info("summary provided")
}

func parseDateParam(raw string) (time.Time, error) {
	if date, err := time.Parse(time.RFC3339, raw); err == nil {
		return date, nil
	}
	return time.Parse(time.DateOnly, raw)
}

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rebecacoelho/nlw-setup/internal/service"
)

type Server struct {
	mx             *chi.Mux
	habitsService  service.HabitsServiceI
	daysService    service.DaysServiceI
	summaryService service.SummaryServiceI
}

type ServicesList struct {
	HabitsService  service.HabitsServiceI
	DaysService    service.DaysServiceI
	SummaryService service.SummaryServiceI
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:             chi.NewMux(),
		habitsService:  servicesOptions.HabitsService,
		daysService:    servicesOptions.DaysService,
		summaryService: servicesOptions.SummaryService,
	}
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/habits", s.CreateHabit)
		r.Get("/habits", s.GetHabits)
		r.Patch("/habits/{id}/toggle", s.ToggleHabit)
		r.Get("/day", s.GetDay)
		r.Get("/summary", s.GetSummary)
	})
	return s
}

// Handler exposes the routed mux, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.mx
}

func (s *Server) Run(address string) error {
	return http.ListenAndServe(address, s.mx)
}

// @title Habit-tracker API
// @description API for the habit scheduling and completion tracking server
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"

	"github.com/rebecacoelho/nlw-setup/internal/api"
	"github.com/rebecacoelho/nlw-setup/internal/repository"
	"github.com/rebecacoelho/nlw-setup/internal/service"
	"github.com/rebecacoelho/nlw-setup/pkg/cleanup"
	"github.com/rebecacoelho/nlw-setup/pkg/config"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	habitsRepo := repository.NewHabitsRepo(&dbCfg)
	daysRepo := repository.NewDaysRepo(&dbCfg)
	serv := api.New(&api.ServicesList{
		HabitsService:  service.NewHabitsService(habitsRepo),
		DaysService:    service.NewDaysService(habitsRepo, daysRepo),
		SummaryService: service.NewSummaryService(daysRepo),
	})
	err := serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
	cleanup.CleanUp()
}

package service

import (
	"context"
	"errors"
	"log"

	"github.com/rebecacoelho/nlw-setup/internal/repository"
	"github.com/rebecacoelho/nlw-setup/pkg/entity"
)

type SummaryService struct {
	daysRepo repository.DaysRepositoryI
}

func NewSummaryService(daysRepo repository.DaysRepositoryI) *SummaryService {
	if daysRepo == nil {
		log.Fatal("provided nil daysRepo")
	}
	return &SummaryService{
		daysRepo: daysRepo,
	}
}

// GetSummary is one aggregate round trip over full history, not a per-day
// loop. Days with no completion activity ever recorded have no row at all.
func (ss *SummaryService) GetSummary(ctx context.Context) ([]entity.DaySummary, error) {
	summary, err := ss.daysRepo.GetSummary(ctx)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return summary, nil
}

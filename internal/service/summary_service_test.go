package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rebecacoelho/nlw-setup/internal/service"
	"github.com/rebecacoelho/nlw-setup/pkg/entity"
)

func TestGetSummary(t *testing.T) {
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		serv := service.NewSummaryService(&daysRepoMock{state: stateSuccess})
		summary, err := serv.GetSummary(ctx)
		assert.NoError(t, err)
		assert.Equal(t, []entity.DaySummary{
			{DayID: testDayID, Date: time.Date(2023, 1, 9, 0, 0, 0, 0, time.UTC), Completed: 1, Amount: 3},
		}, summary)
	})
	t.Run("db error", func(t *testing.T) {
		serv := service.NewSummaryService(&daysRepoMock{state: stateDBError})
		_, err := serv.GetSummary(ctx)
		assert.Error(t, err)
	})
}

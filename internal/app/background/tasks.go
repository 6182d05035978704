package background

import (
	"context"
	"log"
	"time"

	"github.com/khyunjo1/paytalk-menu-service/internal/usecase"
)

type BackgroundTasks struct {
	MenuUsecase   usecase.DailyMenuUsecase
	SweepInterval time.Duration
}

func NewBackgroundTasks(menuUC usecase.DailyMenuUsecase, sweepInterval time.Duration) *BackgroundTasks {
	if sweepInterval <= 0 {
		sweepInterval = time.Minute
	}
	return &BackgroundTasks{
		MenuUsecase:   menuUC,
		SweepInterval: sweepInterval,
	}
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	go bt.startStaleSheetSweep(ctx)
}

// startStaleSheetSweep keeps active flags fresh between reads. Every read
// path also sweeps its own store, so this is a backstop for idle stores.
func (bt *BackgroundTasks) startStaleSheetSweep(ctx context.Context) {
	ticker := time.NewTicker(bt.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := bt.MenuUsecase.DeactivateStaleSheets(); err != nil {
				log.Printf("Stale sheet sweep error: %v\n", err)
			}
		}
	}
}

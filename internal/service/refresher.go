package service

import (
	"context"
	"time"

	"heating_advisor/internal/logger"
)

type reloader interface {
	Reload(ctx context.Context) (bool, error)
}

// RefresherService picks up catalog changes written to storage by other
// processes.
type RefresherService struct {
	catalog reloader
	log     *logger.Logger
}

func NewRefresherService(catalog reloader, log *logger.Logger) *RefresherService {
	return &RefresherService{catalog: catalog, log: log}
}

// Run reloads at the given interval until ctx is canceled.
func (s *RefresherService) Run(ctx context.Context, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.refresh(ctx)
		}
	}
}

func (s *RefresherService) refresh(ctx context.Context) {
	changed, err := s.catalog.Reload(ctx)
	if err != nil {
		if s.log != nil {
			s.log.Errorw("catalog_reload_failed", "err", err)
		}
		return
	}
	if changed && s.log != nil {
		s.log.Infow("catalog_reloaded")
	}
}

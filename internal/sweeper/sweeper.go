package sweeper

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/GlebRadaev/bankcards/internal/config"
	"github.com/GlebRadaev/bankcards/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	batchLimit = 1000
	maxWorkers = 10
)

type CardRepo interface {
	FindExpiredCandidates(ctx context.Context, now time.Time, limit int) ([]domain.Card, error)
	MarkExpired(ctx context.Context, id int, now time.Time) (bool, error)
}

// Service periodically reconciles overdue cards to EXPIRED. Reads already
// reconcile expiry on the fly, so the sweeper only has to keep the stored
// status from drifting for cards nobody touches.
type Service struct {
	cardRepo CardRepo
	interval time.Duration
	now      func() time.Time
}

func New(cfg *config.Config, cardRepo CardRepo) *Service {
	return &Service{
		cardRepo: cardRepo,
		interval: cfg.SweepInterval,
		now:      time.Now,
	}
}

// Start blocks until ctx is canceled, so the caller's goroutine accounts for
// an in-flight sweep during shutdown.
func (s *Service) Start(ctx context.Context) {
	zap.L().Info("expiry sweeper started", zap.Duration("interval", s.interval))
	s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping expiry sweeper")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	now := s.now()
	cards, err := s.cardRepo.FindExpiredCandidates(ctx, now, batchLimit)
	if err != nil {
		zap.L().Error("can't fetch expiry candidates", zap.Error(err))
		return
	}
	if len(cards) == 0 {
		return
	}

	var expired atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxWorkers)
	for _, card := range cards {
		card := card
		g.Go(func() error {
			done, err := s.cardRepo.MarkExpired(gctx, card.ID, now)
			if err != nil {
				return err
			}
			if done {
				expired.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		zap.L().Error("error sweeping expired cards", zap.Error(err))
		return
	}
	zap.L().Info("expiry sweep finished", zap.Int("candidates", len(cards)), zap.Int64("expired", expired.Load()))
}

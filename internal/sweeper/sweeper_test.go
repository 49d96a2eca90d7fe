package sweeper

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/bankcards/internal/config"
	"github.com/GlebRadaev/bankcards/internal/domain"
	gomock "go.uber.org/mock/gomock"
)

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Service, *MockCardRepo) {
	ctrl := gomock.NewController(t)
	cardRepo := NewMockCardRepo(ctrl)
	service := New(&config.Config{SweepInterval: time.Hour}, cardRepo)
	service.now = func() time.Time { return now }
	return service, cardRepo
}

func TestSweep(t *testing.T) {
	service, cardRepo := NewMock(t)

	cards := []domain.Card{
		{ID: 1, Status: domain.CardStatusActive},
		{ID: 2, Status: domain.CardStatusBlocked},
	}
	cardRepo.EXPECT().FindExpiredCandidates(gomock.Any(), now, batchLimit).Return(cards, nil)
	cardRepo.EXPECT().MarkExpired(gomock.Any(), 1, now).Return(true, nil)
	cardRepo.EXPECT().MarkExpired(gomock.Any(), 2, now).Return(true, nil)

	service.sweep(context.Background())
}

func TestSweepAlreadyReconciled(t *testing.T) {
	service, cardRepo := NewMock(t)

	cardRepo.EXPECT().FindExpiredCandidates(gomock.Any(), now, batchLimit).
		Return([]domain.Card{{ID: 1, Status: domain.CardStatusActive}}, nil)
	// guard did not match: another writer expired the card first
	cardRepo.EXPECT().MarkExpired(gomock.Any(), 1, now).Return(false, nil)

	service.sweep(context.Background())
}

func TestSweepNoCandidates(t *testing.T) {
	service, cardRepo := NewMock(t)

	cardRepo.EXPECT().FindExpiredCandidates(gomock.Any(), now, batchLimit).Return(nil, nil)

	service.sweep(context.Background())
}

func TestSweepFetchError(t *testing.T) {
	service, cardRepo := NewMock(t)

	cardRepo.EXPECT().FindExpiredCandidates(gomock.Any(), now, batchLimit).
		Return(nil, errors.New("db down"))

	service.sweep(context.Background())
}

func TestStartBlocksUntilCancel(t *testing.T) {
	service, cardRepo := NewMock(t)
	service.interval = 5 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	cardRepo.EXPECT().FindExpiredCandidates(gomock.Any(), now, batchLimit).
		DoAndReturn(func(context.Context, time.Time, int) ([]domain.Card, error) {
			cancel()
			return nil, nil
		}).MinTimes(1)

	done := make(chan struct{})
	go func() {
		service.Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop after cancel")
	}
}

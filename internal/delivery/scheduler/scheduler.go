// Package scheduler runs the periodic stale order sync.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storefront/config"
	"storefront/internal/delivery"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultInterval = 10 * time.Minute

// SchedulerParams holds dependencies for the sync scheduler, injected by Fx.
type SchedulerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	SettlementUC usecase.SettlementUsecase
}

type syncScheduler struct {
	enabled      bool
	interval     time.Duration
	logger       *slog.Logger
	settlementUC usecase.SettlementUsecase

	// stopped is cancelled by the lifecycle stop hook, possibly before Serve runs.
	stopped context.Context
	cancel  context.CancelFunc

	mu      sync.Mutex
	started bool
	done    chan struct{}
}

// NewScheduler creates the delivery that recovers settlements missed by the webhook.
func NewScheduler(params SchedulerParams) (delivery.Delivery, error) {
	stopped, cancel := context.WithCancel(context.Background())
	s := &syncScheduler{
		interval:     defaultInterval,
		logger:       params.Logger,
		settlementUC: params.SettlementUC,
		stopped:      stopped,
		cancel:       cancel,
		done:         make(chan struct{}),
	}
	if rc := params.Cfg.Reconcile; rc != nil {
		s.enabled = rc.Enabled
		if rc.Interval > 0 {
			s.interval = rc.Interval
		}
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

// Serve blocks until the scheduler is stopped.
func (s *syncScheduler) Serve(ctx context.Context) error {
	if !s.enabled {
		s.logger.Info("Stale order sync disabled")

		return nil
	}

	s.mu.Lock()
	if s.started {
		s.mu.Unlock()

		return errors.New("stale order sync already running")
	}
	s.started = true
	s.mu.Unlock()
	defer close(s.done)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	stopRun := context.AfterFunc(s.stopped, cancel)
	defer stopRun()

	s.logger.Info("Starting stale order sync", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-runCtx.Done():
			return nil
		case <-ticker.C:
			s.runOnce(runCtx)
		}
	}
}

func (s *syncScheduler) runOnce(ctx context.Context) {
	requestID := uuid.New().String()
	logger := s.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, logger)

	if _, err := s.settlementUC.SyncStaleOrders(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Stale order sync failed", slog.Any("error", err))
	}
}

func (s *syncScheduler) stop(ctx context.Context) error {
	s.cancel()

	s.mu.Lock()
	started := s.started
	s.mu.Unlock()

	if !started {
		return nil
	}

	s.logger.Info("Stopping stale order sync")

	stopCtx, stopCancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer stopCancel()

	select {
	case <-s.done:
		return nil
	case <-stopCtx.Done():
		return errors.Wrap(stopCtx.Err(), "stale order sync did not stop")
	}
}

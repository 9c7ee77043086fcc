package scheduler

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestScheduler(t *testing.T, rc *config.ReconcileConfig) (*fxtest.Lifecycle, *syncScheduler, *mockUsecase.MockSettlementUsecase) {
	t.Helper()

	lc := fxtest.NewLifecycle(t)
	settlementUC := mockUsecase.NewMockSettlementUsecase(t)
	cfg := &config.Config{Reconcile: rc}

	d, err := NewScheduler(SchedulerParams{
		Lc:           lc,
		Cfg:          cfg,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		SettlementUC: settlementUC,
	})
	require.NoError(t, err)

	return lc, d.(*syncScheduler), settlementUC
}

func TestScheduler_Disabled(t *testing.T) {
	lc, s, _ := newTestScheduler(t, &config.ReconcileConfig{Enabled: false})

	require.NoError(t, s.Serve(context.Background()))
	lc.RequireStart().RequireStop()
}

func TestScheduler_RunsUntilStopped(t *testing.T) {
	lc, s, settlementUC := newTestScheduler(t, &config.ReconcileConfig{Enabled: true, Interval: 5 * time.Millisecond})

	ran := make(chan struct{}, 1)
	settlementUC.EXPECT().SyncStaleOrders(mock.Anything).
		RunAndReturn(func(ctx context.Context) (*usecase.SyncResult, error) {
			assert.NotEmpty(t, deliverycontext.GetRequestIDFromContext(ctx))
			select {
			case ran <- struct{}{}:
			default:
			}

			return &usecase.SyncResult{}, nil
		})

	lc.RequireStart()

	served := make(chan error, 1)
	go func() { served <- s.Serve(context.Background()) }()

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("sync never ran")
	}

	lc.RequireStop()

	select {
	case err := <-served:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}

func TestScheduler_DefaultInterval(t *testing.T) {
	_, s, _ := newTestScheduler(t, &config.ReconcileConfig{Enabled: true})

	assert.Equal(t, defaultInterval, s.interval)
}

func TestScheduler_StopBeforeServe(t *testing.T) {
	lc, s, _ := newTestScheduler(t, &config.ReconcileConfig{Enabled: true, Interval: time.Hour})

	lc.RequireStart().RequireStop()

	served := make(chan error, 1)
	go func() { served <- s.Serve(context.Background()) }()

	select {
	case err := <-served:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("scheduler kept running after stop")
	}
}

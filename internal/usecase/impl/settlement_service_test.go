package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/policy"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type settlementFixtures struct {
	store   *memoryStore
	repo    *memoryRepo
	gateway *mockService.MockPaymentGateway
	service usecase.SettlementUsecase
}

func testConfig() *config.Config {
	return &config.Config{
		Reconcile: &config.ReconcileConfig{StaleAfter: time.Hour, BatchSize: 2},
	}
}

func createTestSettlementService(t *testing.T) settlementFixtures {
	store := newMemoryStore()
	repo := store.repo()
	gateway := mockService.NewMockPaymentGateway(t)

	service := NewSettlementService(SettlementServiceParams{
		TxManager:  store,
		OrderRepo:  repo,
		RecordRepo: repo,
		Gateway:    gateway,
		Policy:     policy.NewDefaultEngine(),
		Config:     testConfig(),
		Logger:     slog.New(slog.DiscardHandler),
	})

	return settlementFixtures{store: store, repo: repo, gateway: gateway, service: service}
}

func (fx settlementFixtures) seedOrder(orderNumber int64, createdAt time.Time) *entity.Order {
	order := newTestOrder(3000, entity.OrderItem{Price: 10000, Qty: 2})
	order.OrderNumber = orderNumber
	order.CreatedAt = createdAt
	invoice, err := DeriveInvoice(order)
	if err != nil {
		panic(err)
	}
	fx.repo.seed(order, invoice)

	return order
}

func notificationFor(order *entity.Order, status, fraud string) *entity.SettlementNotification {
	return &entity.SettlementNotification{
		OrderKey:          order.Key(),
		TransactionStatus: status,
		FraudStatus:       fraud,
	}
}

func capture(order *entity.Order) *entity.SettlementNotification {
	return notificationFor(order, entity.TransactionStatusCapture, entity.FraudStatusAccept)
}

func settlement(order *entity.Order) *entity.SettlementNotification {
	return notificationFor(order, entity.TransactionStatusSettlement, "")
}

func TestSettlementService_Reconcile_CaptureThenSettlement(t *testing.T) {
	fx := createTestSettlementService(t)
	ctx := context.Background()
	order := fx.seedOrder(1001, time.Now())

	outcome, err := fx.service.Reconcile(ctx, capture(order))
	require.NoError(t, err)
	assert.Equal(t, entity.SettlementOutcomeApplied, outcome)

	status, payment := fx.repo.state(order.ID)
	assert.Equal(t, entity.OrderStatusProcessing, status)
	assert.Equal(t, entity.PaymentStatusPaid, payment)

	outcome, err = fx.service.Reconcile(ctx, settlement(order))
	require.NoError(t, err)
	assert.Equal(t, entity.SettlementOutcomeApplied, outcome)

	status, payment = fx.repo.state(order.ID)
	assert.Equal(t, entity.OrderStatusDelivered, status)
	assert.Equal(t, entity.PaymentStatusPaid, payment)
}

func TestSettlementService_Reconcile_StaleCaptureDoesNotRegress(t *testing.T) {
	fx := createTestSettlementService(t)
	ctx := context.Background()
	order := fx.seedOrder(1002, time.Now())

	_, err := fx.service.Reconcile(ctx, settlement(order))
	require.NoError(t, err)
	_, err = fx.service.Reconcile(ctx, capture(order))
	require.NoError(t, err)

	status, payment := fx.repo.state(order.ID)
	assert.Equal(t, entity.OrderStatusDelivered, status)
	assert.Equal(t, entity.PaymentStatusPaid, payment)
	assert.Equal(t, []entity.SettlementOutcome{entity.SettlementOutcomeApplied, entity.SettlementOutcomeApplied}, fx.repo.outcomes())
	assert.Equal(t, "already settled", fx.repo.records[1].Reason)
}

func TestSettlementService_Reconcile_AnyArrivalOrder(t *testing.T) {
	sequences := [][]string{
		{"capture", "settlement", "challenge"},
		{"capture", "challenge", "settlement"},
		{"settlement", "capture", "challenge"},
		{"settlement", "challenge", "capture"},
		{"challenge", "capture", "settlement"},
		{"challenge", "settlement", "capture"},
	}

	for idx, seq := range sequences {
		t.Run(fmt.Sprint(seq), func(t *testing.T) {
			fx := createTestSettlementService(t)
			order := fx.seedOrder(int64(2000+idx), time.Now())

			for _, step := range seq {
				var n *entity.SettlementNotification
				switch step {
				case "capture":
					n = capture(order)
				case "challenge":
					n = notificationFor(order, entity.TransactionStatusCapture, entity.FraudStatusChallenge)
				default:
					n = settlement(order)
				}
				_, err := fx.service.Reconcile(context.Background(), n)
				require.NoError(t, err)
			}

			status, payment := fx.repo.state(order.ID)
			assert.Equal(t, entity.OrderStatusDelivered, status)
			assert.Equal(t, entity.PaymentStatusPaid, payment)
		})
	}
}

func TestSettlementService_Reconcile_RedeliveryIsIdempotent(t *testing.T) {
	once := createTestSettlementService(t)
	twice := createTestSettlementService(t)
	ctx := context.Background()
	a := once.seedOrder(3001, time.Now())
	b := twice.seedOrder(3001, time.Now())

	_, err := once.service.Reconcile(ctx, settlement(a))
	require.NoError(t, err)
	for range 2 {
		_, err = twice.service.Reconcile(ctx, settlement(b))
		require.NoError(t, err)
	}

	statusA, paymentA := once.repo.state(a.ID)
	statusB, paymentB := twice.repo.state(b.ID)
	assert.Equal(t, statusA, statusB)
	assert.Equal(t, paymentA, paymentB)
}

func TestSettlementService_Reconcile_ConcurrentDeliveries(t *testing.T) {
	fx := createTestSettlementService(t)
	order := fx.seedOrder(3002, time.Now())

	var wg sync.WaitGroup
	for i := range 24 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n := capture(order)
			if i%3 == 0 {
				n = settlement(order)
			}
			_, err := fx.service.Reconcile(context.Background(), n)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	status, payment := fx.repo.state(order.ID)
	assert.Equal(t, entity.OrderStatusDelivered, status)
	assert.Equal(t, entity.PaymentStatusPaid, payment)
}

func TestSettlementService_Reconcile_Rejected(t *testing.T) {
	tests := []struct {
		name     string
		orderKey string
	}{
		{name: "unknown order", orderKey: "999999"},
		{name: "malformed key", orderKey: "order-abc"},
		{name: "empty key", orderKey: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSettlementService(t)
			order := fx.seedOrder(4001, time.Now())

			outcome, err := fx.service.Reconcile(context.Background(), &entity.SettlementNotification{
				OrderKey:          tt.orderKey,
				TransactionStatus: entity.TransactionStatusSettlement,
			})
			require.NoError(t, err)
			assert.Equal(t, entity.SettlementOutcomeRejected, outcome)

			status, payment := fx.repo.state(order.ID)
			assert.Equal(t, entity.OrderStatusWaitingPayment, status)
			assert.Equal(t, entity.PaymentStatusUnpaid, payment)
			assert.Equal(t, []entity.SettlementOutcome{entity.SettlementOutcomeRejected}, fx.repo.outcomes())
		})
	}
}

func TestSettlementService_Reconcile_OrderWithoutInvoice(t *testing.T) {
	fx := createTestSettlementService(t)
	order := newTestOrder(0, entity.OrderItem{Price: 1, Qty: 1})
	fx.repo.seed(order, nil)

	outcome, err := fx.service.Reconcile(context.Background(), settlement(order))
	require.NoError(t, err)
	assert.Equal(t, entity.SettlementOutcomeRejected, outcome)

	status, _ := fx.repo.state(order.ID)
	assert.Equal(t, entity.OrderStatusWaitingPayment, status)
	assert.Contains(t, fx.repo.records[0].Reason, "order has no invoice")
}

func TestSettlementService_Reconcile_IgnoredStatuses(t *testing.T) {
	fx := createTestSettlementService(t)
	order := fx.seedOrder(4002, time.Now())

	for _, n := range []*entity.SettlementNotification{
		notificationFor(order, "pending", ""),
		notificationFor(order, "deny", ""),
		notificationFor(order, "expire", ""),
		notificationFor(order, entity.TransactionStatusCapture, "deny"),
	} {
		outcome, err := fx.service.Reconcile(context.Background(), n)
		require.NoError(t, err)
		assert.Equal(t, entity.SettlementOutcomeIgnored, outcome)
	}

	status, payment := fx.repo.state(order.ID)
	assert.Equal(t, entity.OrderStatusWaitingPayment, status)
	assert.Equal(t, entity.PaymentStatusUnpaid, payment)
}

func TestSettlementService_Reconcile_InfrastructureFailure(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	recordRepo := mockRepo.NewMockSettlementRecordRepository(t)
	service := NewSettlementService(SettlementServiceParams{
		TxManager:  txManager,
		RecordRepo: recordRepo,
		Policy:     policy.NewDefaultEngine(),
		Logger:     slog.New(slog.DiscardHandler),
	})

	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		Return(errors.New("connection refused"))

	outcome, err := service.Reconcile(context.Background(), &entity.SettlementNotification{
		OrderKey:          "5001",
		TransactionStatus: entity.TransactionStatusSettlement,
	})
	require.Error(t, err)
	assert.Empty(t, outcome)
	recordRepo.AssertNotCalled(t, "CreateRecord", mock.Anything, mock.Anything)
}

func TestSettlementService_Reconcile_RecordFailureDoesNotChangeOutcome(t *testing.T) {
	store := newMemoryStore()
	recordRepo := mockRepo.NewMockSettlementRecordRepository(t)
	service := NewSettlementService(SettlementServiceParams{
		TxManager:  store,
		OrderRepo:  store.repo(),
		RecordRepo: recordRepo,
		Policy:     policy.NewDefaultEngine(),
		Logger:     slog.New(slog.DiscardHandler),
	})
	order := newTestOrder(0, entity.OrderItem{Price: 5, Qty: 1})
	invoice, err := DeriveInvoice(order)
	require.NoError(t, err)
	store.repo().seed(order, invoice)

	recordRepo.EXPECT().
		CreateRecord(mock.Anything, mock.AnythingOfType("*entity.SettlementRecord")).
		Return(errors.New("disk full"))

	outcome, err := service.Reconcile(context.Background(), settlement(order))
	require.NoError(t, err)
	assert.Equal(t, entity.SettlementOutcomeApplied, outcome)
}

func TestSettlementService_ReconcileOrder(t *testing.T) {
	admin := entity.Actor{ID: uuid.New(), Role: entity.RoleAdmin}

	t.Run("admin applies gateway status", func(t *testing.T) {
		fx := createTestSettlementService(t)
		order := fx.seedOrder(6001, time.Now())

		fx.gateway.EXPECT().
			TransactionStatus(mock.Anything, order.Key()).
			Return(settlement(order), nil)

		outcome, err := fx.service.ReconcileOrder(context.Background(), admin, order.OrderNumber)
		require.NoError(t, err)
		assert.Equal(t, entity.SettlementOutcomeApplied, outcome)

		status, _ := fx.repo.state(order.ID)
		assert.Equal(t, entity.OrderStatusDelivered, status)
	})

	t.Run("owner is forbidden", func(t *testing.T) {
		fx := createTestSettlementService(t)
		order := fx.seedOrder(6002, time.Now())
		owner := entity.Actor{ID: order.UserID, Role: entity.RoleUser}

		_, err := fx.service.ReconcileOrder(context.Background(), owner, order.OrderNumber)
		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})

	t.Run("missing order", func(t *testing.T) {
		fx := createTestSettlementService(t)

		_, err := fx.service.ReconcileOrder(context.Background(), admin, 404)
		assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))

		_, err = fx.service.ReconcileOrder(context.Background(), entity.Actor{ID: uuid.New(), Role: entity.RoleUser}, 404)
		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})

	t.Run("gateway unavailable", func(t *testing.T) {
		fx := createTestSettlementService(t)
		order := fx.seedOrder(6003, time.Now())

		fx.gateway.EXPECT().
			TransactionStatus(mock.Anything, order.Key()).
			Return(nil, errors.New("timeout"))

		_, err := fx.service.ReconcileOrder(context.Background(), admin, order.OrderNumber)
		assert.True(t, errors.Is(err, domainerrors.ErrGatewayUnavailable))

		status, payment := fx.repo.state(order.ID)
		assert.Equal(t, entity.OrderStatusWaitingPayment, status)
		assert.Equal(t, entity.PaymentStatusUnpaid, payment)
	})
}

func TestSettlementService_SyncStaleOrders(t *testing.T) {
	fx := createTestSettlementService(t)
	ctx := context.Background()
	old := time.Now().Add(-2 * time.Hour)

	settled := []*entity.Order{
		fx.seedOrder(7001, old),
		fx.seedOrder(7004, old.Add(3*time.Minute)),
		fx.seedOrder(7005, old.Add(4*time.Minute)),
	}
	pending := fx.seedOrder(7002, old.Add(time.Minute))
	unreachable := fx.seedOrder(7003, old.Add(2*time.Minute))
	fresh := fx.seedOrder(7006, time.Now())

	for _, order := range settled {
		fx.gateway.EXPECT().TransactionStatus(mock.Anything, order.Key()).Return(settlement(order), nil)
	}
	fx.gateway.EXPECT().TransactionStatus(mock.Anything, pending.Key()).Return(notificationFor(pending, "pending", ""), nil)
	fx.gateway.EXPECT().TransactionStatus(mock.Anything, unreachable.Key()).Return(nil, errors.New("404 transaction not found"))

	result, err := fx.service.SyncStaleOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, &usecase.SyncResult{Scanned: 5, Applied: 3, Skipped: 2}, result)

	for _, order := range settled {
		status, payment := fx.repo.state(order.ID)
		assert.Equal(t, entity.OrderStatusDelivered, status)
		assert.Equal(t, entity.PaymentStatusPaid, payment)
	}
	status, _ := fx.repo.state(fresh.ID)
	assert.Equal(t, entity.OrderStatusWaitingPayment, status)
	fx.gateway.AssertNotCalled(t, "TransactionStatus", mock.Anything, fresh.Key())
}

func TestSettlementService_ListRecords(t *testing.T) {
	fx := createTestSettlementService(t)
	ctx := context.Background()
	order := fx.seedOrder(8001, time.Now())

	_, err := fx.service.Reconcile(ctx, &entity.SettlementNotification{OrderKey: "1", TransactionStatus: "settlement"})
	require.NoError(t, err)
	_, err = fx.service.Reconcile(ctx, settlement(order))
	require.NoError(t, err)

	admin := entity.Actor{ID: uuid.New(), Role: entity.RoleAdmin}
	records, err := fx.service.ListRecords(ctx, admin, entity.SettlementOutcomeRejected, 10, 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "1", records[0].OrderKey)

	all, err := fx.service.ListRecords(ctx, admin, "", 0, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = fx.service.ListRecords(ctx, admin, entity.SettlementOutcome("lost"), 10, 0)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = fx.service.ListRecords(ctx, entity.Actor{ID: order.UserID, Role: entity.RoleUser}, "", 10, 0)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

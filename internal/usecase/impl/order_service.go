package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/policy"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/ecodeclub/ekit/slice"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager   repository.TransactionManager
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	numbers     service.OrderNumberGenerator
	policy      *policy.Engine
	logger      *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	OrderRepo   repository.OrderRepository
	ProductRepo repository.ProductRepository
	Numbers     service.OrderNumberGenerator
	Policy      *policy.Engine
	Logger      *slog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:   params.TxManager,
		orderRepo:   params.OrderRepo,
		productRepo: params.ProductRepo,
		numbers:     params.Numbers,
		policy:      params.Policy,
		logger:      params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder snapshots the requested products into a new order, then derives
// and stores its invoice in the same transaction.
func (srv *orderService) PlaceOrder(ctx context.Context, actor entity.Actor, input *usecase.PlaceOrderInput) (*usecase.PlaceOrderOutput, error) {
	pc := srv.policy.For(actor)
	if err := authorize(pc, policy.ActionCreate, policy.Provisional(policy.SubjectOrder, actor.ID)); err != nil {
		return nil, err
	}

	if err := validatePlaceOrder(input); err != nil {
		return nil, err
	}

	order, err := srv.buildOrder(ctx, actor, input)
	if err != nil {
		return nil, err
	}

	var invoice *entity.Invoice
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewOrderRepository().CreateOrder(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		derived, err := DeriveInvoice(order)
		if err != nil {
			return err
		}

		if err := repoFactory.NewInvoiceRepository().CreateInvoice(ctx, derived); err != nil {
			if errors.Is(err, repository.ErrInvoiceAlreadyExists) {
				return domainerrors.ErrInvoiceAlreadyExists
			}

			return errors.Wrap(err, "failed to create invoice")
		}
		invoice = derived

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to place order",
			slog.String("user_id", actor.ID.String()),
			slog.Int64("order_number", order.OrderNumber),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.log(ctx).Info("Order placed",
		slog.String("order_key", order.Key()),
		slog.Int64("total", invoice.Total),
		slog.Int64("items_count", order.ItemsCount()),
	)

	return &usecase.PlaceOrderOutput{Order: order, Invoice: invoice}, nil
}

func validatePlaceOrder(input *usecase.PlaceOrderInput) error {
	if len(input.Items) == 0 {
		return domainerrors.ErrInvalidOrder.WithDetails("order has no items")
	}
	if input.DeliveryFee < 0 {
		return domainerrors.ErrInvalidOrder.WithDetails("delivery fee must not be negative")
	}
	for _, item := range input.Items {
		if item.Qty < 1 {
			return domainerrors.ErrInvalidOrder.WithDetails("item quantity must be at least 1")
		}
	}
	if err := input.DeliveryAddress.Validate(); err != nil {
		return domainerrors.ErrInvalidOrder.WithDetails(err.Error())
	}

	return nil
}

// buildOrder copies name and price from the current catalogue into the items.
func (srv *orderService) buildOrder(ctx context.Context, actor entity.Actor, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	ids := slice.Map(input.Items, func(_ int, src usecase.PlaceOrderItem) uuid.UUID {
		return src.ProductID
	})

	products, err := srv.productRepo.FindProductsByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load products")
	}

	catalog := make(map[uuid.UUID]*entity.Product, len(products))
	for _, product := range products {
		catalog[product.ID] = product
	}

	orderID := uuid.New()
	items := make([]entity.OrderItem, 0, len(input.Items))
	for _, requested := range input.Items {
		product, ok := catalog[requested.ProductID]
		if !ok {
			return nil, domainerrors.ErrProductNotFound.WithDetails(requested.ProductID.String())
		}
		items = append(items, entity.OrderItem{
			ID:        uuid.New(),
			OrderID:   orderID,
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Qty:       requested.Qty,
		})
	}

	now := time.Now()

	return &entity.Order{
		ID:              orderID,
		OrderNumber:     srv.numbers.Next(),
		Status:          entity.OrderStatusWaitingPayment,
		DeliveryFee:     input.DeliveryFee,
		DeliveryAddress: input.DeliveryAddress,
		UserID:          actor.ID,
		Items:           items,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// GetOrder returns a single order the actor may read.
func (srv *orderService) GetOrder(ctx context.Context, actor entity.Actor, orderNumber int64) (*entity.Order, error) {
	pc := srv.policy.For(actor)

	order, err := srv.orderRepo.FindOrderByNumber(ctx, orderNumber)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, missing(pc, policy.ActionRead, policy.SubjectOrder, domainerrors.ErrOrderNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order")
	}

	if err := authorize(pc, policy.ActionRead, policy.OrderResource(order)); err != nil {
		return nil, err
	}

	return order, nil
}

// ListOrders returns the actor's own orders together with their total count.
func (srv *orderService) ListOrders(ctx context.Context, actor entity.Actor, limit, offset int) (*usecase.OrderPage, error) {
	pc := srv.policy.For(actor)
	if err := authorize(pc, policy.ActionView, policy.Of(policy.SubjectOrder)); err != nil {
		return nil, err
	}

	limit, offset = pageBounds(limit, offset)

	var (
		page  usecase.OrderPage
		group errgroup.Group
	)
	group.Go(func() error {
		orders, err := srv.orderRepo.ListOrdersByUser(ctx, actor.ID, offset, limit)
		if err != nil {
			return errors.Wrap(err, "failed to list orders")
		}
		page.Orders = orders

		return nil
	})
	group.Go(func() error {
		total, err := srv.orderRepo.CountOrdersByUser(ctx, actor.ID)
		if err != nil {
			return errors.Wrap(err, "failed to count orders")
		}
		page.Total = total

		return nil
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return &page, nil
}

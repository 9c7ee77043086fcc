package impl

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
)

// memoryStore is an in-memory persistence double. Execute holds a single
// store-wide lock for the whole transaction and restores a snapshot when the
// callback fails, which mirrors the row lock plus rollback of the real store.
type memoryStore struct {
	mu       sync.Mutex
	orders   map[uuid.UUID]*entity.Order
	invoices map[uuid.UUID]*entity.Invoice
	records  []*entity.SettlementRecord
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		orders:   map[uuid.UUID]*entity.Order{},
		invoices: map[uuid.UUID]*entity.Invoice{},
	}
}

// memoryRepo serves every repository interface over a memoryStore. The view
// handed to a transaction callback already runs under the store lock.
type memoryRepo struct {
	*memoryStore
	tx bool
}

func (s *memoryStore) repo() *memoryRepo {
	return &memoryRepo{memoryStore: s}
}

func (r *memoryRepo) lock() func() {
	if r.tx {
		return func() {}
	}
	r.mu.Lock()

	return r.mu.Unlock
}

func (s *memoryStore) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := make(map[uuid.UUID]entity.Order, len(s.orders))
	for id, o := range s.orders {
		orders[id] = *o
	}
	invoices := make(map[uuid.UUID]entity.Invoice, len(s.invoices))
	for id, inv := range s.invoices {
		invoices[id] = *inv
	}

	err := fn(&memoryRepo{memoryStore: s, tx: true})

	if err != nil {
		s.orders = make(map[uuid.UUID]*entity.Order, len(orders))
		for id, o := range orders {
			s.orders[id] = &o
		}
		s.invoices = make(map[uuid.UUID]*entity.Invoice, len(invoices))
		for id, inv := range invoices {
			s.invoices[id] = &inv
		}
	}

	return err
}

func (r *memoryRepo) NewOrderRepository() repository.OrderRepository     { return r }
func (r *memoryRepo) NewInvoiceRepository() repository.InvoiceRepository { return r }

func (r *memoryRepo) seed(order *entity.Order, invoice *entity.Invoice) {
	defer r.lock()()
	r.orders[order.ID] = order
	if invoice != nil {
		r.invoices[invoice.ID] = invoice
	}
}

func (r *memoryRepo) CreateOrder(_ context.Context, order *entity.Order) error {
	defer r.lock()()
	for _, existing := range r.orders {
		if existing.OrderNumber == order.OrderNumber {
			return repository.ErrOrderNumberConflict
		}
	}
	clone := *order
	r.orders[order.ID] = &clone

	return nil
}

func (r *memoryRepo) findByNumber(orderNumber int64) (*entity.Order, error) {
	for _, order := range r.orders {
		if order.OrderNumber == orderNumber {
			clone := *order

			return &clone, nil
		}
	}

	return nil, repository.ErrOrderNotFound
}

func (r *memoryRepo) FindOrderByNumber(_ context.Context, orderNumber int64) (*entity.Order, error) {
	defer r.lock()()

	return r.findByNumber(orderNumber)
}

func (r *memoryRepo) FindOrderByNumberForUpdate(_ context.Context, orderNumber int64) (*entity.Order, error) {
	defer r.lock()()

	return r.findByNumber(orderNumber)
}

func (r *memoryRepo) ListOrdersByUser(_ context.Context, userID uuid.UUID, offset, limit int) ([]*entity.Order, error) {
	defer r.lock()()
	var out []*entity.Order
	for _, order := range r.orders {
		if order.UserID == userID {
			out = append(out, order)
		}
	}

	return page(out, offset, limit), nil
}

func (r *memoryRepo) CountOrdersByUser(_ context.Context, userID uuid.UUID) (int64, error) {
	defer r.lock()()
	var n int64
	for _, order := range r.orders {
		if order.UserID == userID {
			n++
		}
	}

	return n, nil
}

func (r *memoryRepo) ListStaleOrders(_ context.Context, status entity.OrderStatus, before time.Time, offset, limit int) ([]*entity.Order, error) {
	defer r.lock()()
	var out []*entity.Order
	for _, order := range r.orders {
		if order.Status == status && order.CreatedAt.Before(before) {
			clone := *order
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })

	return page(out, offset, limit), nil
}

func (r *memoryRepo) AdvanceOrderStatus(_ context.Context, orderID uuid.UUID, status entity.OrderStatus) (bool, error) {
	defer r.lock()()
	order, ok := r.orders[orderID]
	if !ok || !slices.Contains(entity.StatusesBefore(status), order.Status) {
		return false, nil
	}
	order.Status = status

	return true, nil
}

func (r *memoryRepo) CreateInvoice(_ context.Context, invoice *entity.Invoice) error {
	defer r.lock()()
	for _, existing := range r.invoices {
		if existing.OrderID == invoice.OrderID {
			return repository.ErrInvoiceAlreadyExists
		}
	}
	clone := *invoice
	r.invoices[invoice.ID] = &clone

	return nil
}

func (r *memoryRepo) FindInvoiceByOrderNumber(_ context.Context, orderNumber int64) (*entity.Invoice, error) {
	defer r.lock()()
	for _, invoice := range r.invoices {
		if invoice.OrderNumber == orderNumber {
			clone := *invoice

			return &clone, nil
		}
	}

	return nil, repository.ErrInvoiceNotFound
}

func (r *memoryRepo) FindInvoiceByOrderID(_ context.Context, orderID uuid.UUID) (*entity.Invoice, error) {
	defer r.lock()()
	for _, invoice := range r.invoices {
		if invoice.OrderID == orderID {
			clone := *invoice

			return &clone, nil
		}
	}

	return nil, repository.ErrInvoiceNotFound
}

func (r *memoryRepo) MarkInvoicePaid(_ context.Context, invoiceID uuid.UUID) error {
	defer r.lock()()
	invoice, ok := r.invoices[invoiceID]
	if !ok {
		return repository.ErrInvoiceNotFound
	}
	invoice.PaymentStatus = entity.PaymentStatusPaid

	return nil
}

func (r *memoryRepo) CreateRecord(_ context.Context, record *entity.SettlementRecord) error {
	defer r.lock()()
	r.records = append(r.records, record)

	return nil
}

func (r *memoryRepo) ListRecords(_ context.Context, outcome entity.SettlementOutcome, offset, limit int) ([]*entity.SettlementRecord, error) {
	defer r.lock()()
	var out []*entity.SettlementRecord
	for _, record := range slices.Backward(r.records) {
		if outcome == "" || record.Outcome == outcome {
			out = append(out, record)
		}
	}

	return page(out, offset, limit), nil
}

func (r *memoryRepo) state(orderID uuid.UUID) (entity.OrderStatus, entity.PaymentStatus) {
	defer r.lock()()
	order := r.orders[orderID]
	for _, invoice := range r.invoices {
		if invoice.OrderID == orderID {
			return order.Status, invoice.PaymentStatus
		}
	}

	return order.Status, ""
}

func (r *memoryRepo) outcomes() []entity.SettlementOutcome {
	defer r.lock()()
	out := make([]entity.SettlementOutcome, 0, len(r.records))
	for _, record := range r.records {
		out = append(out, record.Outcome)
	}

	return out
}

func page[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return nil
	}

	return items[offset:min(offset+limit, len(items))]
}

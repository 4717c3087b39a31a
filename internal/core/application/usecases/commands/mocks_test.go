package commands_test

import (
	"context"
	"time"

	"groupbuy/internal/core/application/usecases/commands"
	"groupbuy/internal/core/domain/model/collectiveorder"
	"groupbuy/internal/core/domain/model/credit"
	"groupbuy/internal/core/domain/model/customer"
	"groupbuy/internal/core/domain/model/customorder"
	"groupbuy/internal/core/domain/model/kernel"
	"groupbuy/internal/core/domain/model/supplier"
	"groupbuy/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

type MockSupplierRepository struct{ mock.Mock }

func (m *MockSupplierRepository) Add(ctx context.Context, s *supplier.Supplier) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockSupplierRepository) Update(ctx context.Context, s *supplier.Supplier) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockSupplierRepository) Get(ctx context.Context, id kernel.UUID) (*supplier.Supplier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*supplier.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) GetAll(ctx context.Context) ([]*supplier.Supplier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*supplier.Supplier), args.Error(1)
}

type MockCustomOrderRepository struct{ mock.Mock }

func (m *MockCustomOrderRepository) Add(ctx context.Context, o *customorder.CustomOrder) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockCustomOrderRepository) Update(ctx context.Context, o *customorder.CustomOrder) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockCustomOrderRepository) Get(ctx context.Context, id kernel.UUID) (*customorder.CustomOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customorder.CustomOrder), args.Error(1)
}

func (m *MockCustomOrderRepository) GetAllByPool(ctx context.Context, poolID kernel.UUID) ([]*customorder.CustomOrder, error) {
	args := m.Called(ctx, poolID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*customorder.CustomOrder), args.Error(1)
}

func (m *MockCustomOrderRepository) GetAllConfirmedBySupplier(ctx context.Context, supplierID kernel.UUID) ([]*customorder.CustomOrder, error) {
	args := m.Called(ctx, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*customorder.CustomOrder), args.Error(1)
}

func (m *MockCustomOrderRepository) UpdateStatusForPool(ctx context.Context, poolID kernel.UUID, status customorder.Status) error {
	return m.Called(ctx, poolID, status).Error(0)
}

func (m *MockCustomOrderRepository) DetachAllFromPool(ctx context.Context, poolID kernel.UUID) error {
	return m.Called(ctx, poolID).Error(0)
}

type MockCollectiveOrderRepository struct{ mock.Mock }

func (m *MockCollectiveOrderRepository) Add(ctx context.Context, p *collectiveorder.CollectiveOrder) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockCollectiveOrderRepository) Update(ctx context.Context, p *collectiveorder.CollectiveOrder) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockCollectiveOrderRepository) Get(ctx context.Context, id kernel.UUID) (*collectiveorder.CollectiveOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*collectiveorder.CollectiveOrder), args.Error(1)
}

func (m *MockCollectiveOrderRepository) GetOpenBySupplier(ctx context.Context, supplierID kernel.UUID) (*collectiveorder.CollectiveOrder, error) {
	args := m.Called(ctx, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*collectiveorder.CollectiveOrder), args.Error(1)
}

func (m *MockCollectiveOrderRepository) GetAllInPaymentWindow(ctx context.Context) ([]*collectiveorder.CollectiveOrder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*collectiveorder.CollectiveOrder), args.Error(1)
}

type MockCreditRepository struct{ mock.Mock }

func (m *MockCreditRepository) Add(ctx context.Context, t *credit.Transaction) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockCreditRepository) Update(ctx context.Context, t *credit.Transaction) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockCreditRepository) Get(ctx context.Context, id kernel.UUID) (*credit.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*credit.Transaction), args.Error(1)
}

func (m *MockCreditRepository) GetAllByCustomer(ctx context.Context, customerID kernel.UUID) ([]*credit.Transaction, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*credit.Transaction), args.Error(1)
}

func (m *MockCreditRepository) GetAllActiveByCustomer(ctx context.Context, customerID kernel.UUID) ([]*credit.Transaction, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*credit.Transaction), args.Error(1)
}

func (m *MockCreditRepository) GetAllOverdue(ctx context.Context, now time.Time) ([]*credit.Transaction, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*credit.Transaction), args.Error(1)
}

// MockUoW satisfies every unit of work interface in the package; individual
// tests register only the repository accessors their handler touches.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	return m.Called().Get(0).(ports.CustomerRepository)
}

func (m *MockUoW) SupplierRepository() ports.SupplierRepository {
	return m.Called().Get(0).(ports.SupplierRepository)
}

func (m *MockUoW) CustomOrderRepository() ports.CustomOrderRepository {
	return m.Called().Get(0).(ports.CustomOrderRepository)
}

func (m *MockUoW) CollectiveOrderRepository() ports.CollectiveOrderRepository {
	return m.Called().Get(0).(ports.CollectiveOrderRepository)
}

func (m *MockUoW) CreditRepository() ports.CreditRepository {
	return m.Called().Get(0).(ports.CreditRepository)
}

type MockCustomerUoWFactory struct{ mock.Mock }

func (m *MockCustomerUoWFactory) Create() commands.CustomerUoW {
	return m.Called().Get(0).(commands.CustomerUoW)
}

type MockSupplierUoWFactory struct{ mock.Mock }

func (m *MockSupplierUoWFactory) Create() commands.SupplierUoW {
	return m.Called().Get(0).(commands.SupplierUoW)
}

type MockCustomOrderUoWFactory struct{ mock.Mock }

func (m *MockCustomOrderUoWFactory) Create() commands.CustomOrderUoW {
	return m.Called().Get(0).(commands.CustomOrderUoW)
}

type MockAnalysisUoWFactory struct{ mock.Mock }

func (m *MockAnalysisUoWFactory) Create() commands.AnalysisUoW {
	return m.Called().Get(0).(commands.AnalysisUoW)
}

type MockPoolUoWFactory struct{ mock.Mock }

func (m *MockPoolUoWFactory) Create() commands.PoolUoW {
	return m.Called().Get(0).(commands.PoolUoW)
}

type MockPoolMembersUoWFactory struct{ mock.Mock }

func (m *MockPoolMembersUoWFactory) Create() commands.PoolMembersUoW {
	return m.Called().Get(0).(commands.PoolMembersUoW)
}

type MockOpenPoolUoWFactory struct{ mock.Mock }

func (m *MockOpenPoolUoWFactory) Create() commands.OpenPoolUoW {
	return m.Called().Get(0).(commands.OpenPoolUoW)
}

type MockLedgerUoWFactory struct{ mock.Mock }

func (m *MockLedgerUoWFactory) Create() commands.LedgerUoW {
	return m.Called().Get(0).(commands.LedgerUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	return m.Called().Get(0).(commands.UoW)
}

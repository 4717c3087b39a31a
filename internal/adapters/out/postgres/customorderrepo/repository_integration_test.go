package customorderrepo_test

import (
	"context"
	"testing"
	"time"

	"groupbuy/internal/adapters/out/postgres/customorderrepo"
	"groupbuy/internal/core/domain/model/customorder"
	"groupbuy/internal/core/domain/model/kernel"
	"groupbuy/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// CustomOrderRepositoryIntegrationTestSuite provides integration tests for
// CustomOrderRepository using PostgreSQL containers to verify database
// persistence behavior, including the optimistic lock and pool batch writes.
type CustomOrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *customorderrepo.GormCustomOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *CustomOrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&customorderrepo.CustomOrderDTO{}))
}

func (suite *CustomOrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE custom_orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = customorderrepo.NewGormCustomOrderRepository(suite.db, suite.tracker)
}

func (suite *CustomOrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CustomOrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()

	original := suite.createPendingOrder()
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()

	err := suite.repository.Add(ctx, original)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.CustomerID(), retrieved.CustomerID())
	suite.Equal(original.Description(), retrieved.Description())
	suite.Equal(original.Quantity(), retrieved.Quantity())
	suite.Equal(original.Urgency(), retrieved.Urgency())
	suite.Equal(customorder.StatusPendingAnalysis, retrieved.Status())
	suite.Equal(original.Details().PreferredColor, retrieved.Details().PreferredColor)
	suite.Equal(original.Details().AlternativeColors, retrieved.Details().AlternativeColors)
	suite.Equal(int64(1), retrieved.Version())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CustomOrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *CustomOrderRepositoryIntegrationTestSuite) TestUpdate_PersistsWorkflowProgress() {
	ctx := context.Background()

	order := suite.createPendingOrder()
	suite.tracker.On("TrackAggregate", order.ID(), order).Times(2)

	suite.Require().NoError(suite.repository.Add(ctx, order))

	adminID := kernel.NewUUID()
	supplierID := kernel.NewUUID()
	finalPrice := suite.money("150.00")
	suite.Require().NoError(order.Analyze(adminID, finalPrice, supplierID, time.Now().UTC()))

	suite.Require().NoError(suite.repository.Update(ctx, order))

	retrieved, err := suite.repository.Get(ctx, order.ID())
	suite.Require().NoError(err)

	suite.Equal(customorder.StatusPriced, retrieved.Status())
	suite.Require().NotNil(retrieved.FinalPrice())
	suite.True(retrieved.FinalPrice().IsEqual(finalPrice))
	suite.Require().NotNil(retrieved.SupplierID())
	suite.Equal(supplierID, *retrieved.SupplierID())
	suite.Equal(int64(2), retrieved.Version())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CustomOrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsConcurrentModificationError() {
	ctx := context.Background()

	order := suite.createPendingOrder()
	suite.tracker.On("TrackAggregate", order.ID(), order).Times(2)

	suite.Require().NoError(suite.repository.Add(ctx, order))

	suite.Require().NoError(order.Analyze(kernel.NewUUID(), suite.money("100.00"), kernel.NewUUID(), time.Now().UTC()))
	suite.Require().NoError(suite.repository.Update(ctx, order))

	// The first update moved the stored version; writing again from the
	// same load must lose.
	suite.Require().NoError(order.Confirm(time.Now().UTC()))
	err := suite.repository.Update(ctx, order)
	suite.Require().Error(err)

	var conflictErr *errs.ConcurrentModificationError
	suite.Require().ErrorAs(err, &conflictErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CustomOrderRepositoryIntegrationTestSuite) TestGetAllConfirmedBySupplier_FiltersAndOrders() {
	ctx := context.Background()
	supplierID := kernel.NewUUID()

	older := suite.createConfirmedOrder(supplierID, time.Now().UTC().Add(-2*time.Hour))
	newer := suite.createConfirmedOrder(supplierID, time.Now().UTC().Add(-1*time.Hour))
	otherSupplier := suite.createConfirmedOrder(kernel.NewUUID(), time.Now().UTC())
	pending := suite.createPendingOrder()

	for _, o := range []*customorder.CustomOrder{older, newer, otherSupplier, pending} {
		suite.tracker.On("TrackAggregate", o.ID(), o).Once()
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	confirmed, err := suite.repository.GetAllConfirmedBySupplier(ctx, supplierID)
	suite.Require().NoError(err)

	suite.Require().Len(confirmed, 2)
	suite.Equal(older.ID(), confirmed[0].ID())
	suite.Equal(newer.ID(), confirmed[1].ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CustomOrderRepositoryIntegrationTestSuite) TestPoolBatchWrites() {
	ctx := context.Background()
	supplierID := kernel.NewUUID()
	poolID := kernel.NewUUID()

	member1 := suite.createPooledOrder(supplierID, poolID)
	member2 := suite.createPooledOrder(supplierID, poolID)
	outsider := suite.createConfirmedOrder(supplierID, time.Now().UTC())

	for _, o := range []*customorder.CustomOrder{member1, member2, outsider} {
		suite.tracker.On("TrackAggregate", o.ID(), o).Once()
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	suite.Run("update status for pool touches only members", func() {
		err := suite.repository.UpdateStatusForPool(ctx, poolID, customorder.StatusSupplierPaid)
		suite.Require().NoError(err)

		members, err := suite.repository.GetAllByPool(ctx, poolID)
		suite.Require().NoError(err)
		suite.Require().Len(members, 2)
		for _, m := range members {
			suite.Equal(customorder.StatusSupplierPaid, m.Status())
			suite.Equal(int64(2), m.Version())
		}

		unpooled, err := suite.repository.Get(ctx, outsider.ID())
		suite.Require().NoError(err)
		suite.Equal(customorder.StatusConfirmed, unpooled.Status())
	})

	suite.Run("detach all reverts members to confirmed", func() {
		err := suite.repository.DetachAllFromPool(ctx, poolID)
		suite.Require().NoError(err)

		members, err := suite.repository.GetAllByPool(ctx, poolID)
		suite.Require().NoError(err)
		suite.Empty(members)

		released, err := suite.repository.Get(ctx, member1.ID())
		suite.Require().NoError(err)
		suite.Equal(customorder.StatusConfirmed, released.Status())
		suite.Nil(released.CollectiveOrderID())
	})

	suite.tracker.AssertExpectations(suite.T())
}

// createPendingOrder creates a freshly submitted order awaiting analysis.
func (suite *CustomOrderRepositoryIntegrationTestSuite) createPendingOrder() *customorder.CustomOrder {
	estimated := suite.money("120.00")
	order, err := customorder.NewCustomOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		"Wireless headphones",
		customorder.ItemDetails{
			PreferredColor:    "black",
			AlternativeColors: []string{"white", "grey"},
			Category:          "electronics",
		},
		2,
		customorder.UrgencyNormal,
		&estimated,
		time.Now().UTC(),
	)
	suite.Require().NoError(err)
	return order
}

// createConfirmedOrder creates an order priced for the supplier and confirmed
// at the given time.
func (suite *CustomOrderRepositoryIntegrationTestSuite) createConfirmedOrder(
	supplierID kernel.UUID, confirmedAt time.Time,
) *customorder.CustomOrder {
	order := suite.createPendingOrder()
	suite.Require().NoError(order.Analyze(kernel.NewUUID(), suite.money("80.00"), supplierID, confirmedAt.Add(-time.Minute)))
	suite.Require().NoError(order.Confirm(confirmedAt))
	return order
}

// createPooledOrder creates a confirmed order attached to the given pool.
func (suite *CustomOrderRepositoryIntegrationTestSuite) createPooledOrder(
	supplierID kernel.UUID, poolID kernel.UUID,
) *customorder.CustomOrder {
	order := suite.createConfirmedOrder(supplierID, time.Now().UTC())
	suite.Require().NoError(order.AttachToPool(poolID))
	return order
}

func (suite *CustomOrderRepositoryIntegrationTestSuite) money(s string) kernel.Money {
	m, err := kernel.NewMoneyFromString(s)
	suite.Require().NoError(err)
	return m
}

func TestCustomOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CustomOrderRepositoryIntegrationTestSuite))
}

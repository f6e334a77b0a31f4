package customerrepo_test

import (
	"context"
	"testing"
	"time"

	"ordering/internal/adapters/out/postgres/customerrepo"
	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
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

func (m *MockAggregateTracker) TrackAggregate(id int64, aggregate any) {
	m.Called(id, aggregate)
}

// CustomerRepositoryIntegrationTestSuite provides integration tests for
// CustomerRepository using PostgreSQL containers.
type CustomerRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *customerrepo.GormCustomerRepository
	orderRepo  *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *CustomerRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&customerrepo.CustomerDTO{}, &orderrepo.OrderDTO{}))
}

func (suite *CustomerRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, customers").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Return().Maybe()
	suite.repository = customerrepo.NewGormCustomerRepository(suite.db, suite.tracker)
	suite.orderRepo = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CustomerRepositoryIntegrationTestSuite) newPersistedCustomer(segment customer.Segment) *customer.Customer {
	c, err := customer.NewCustomer("Dana", segment)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), c))
	return c
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestAdd_AssignsGeneratedID() {
	c := suite.newPersistedCustomer(customer.SegmentNew)

	suite.Positive(c.ID())
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", c.ID(), c)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestGet_RoundTripsTheAggregate() {
	c := suite.newPersistedCustomer(customer.SegmentWholesale)

	loaded, err := suite.repository.Get(context.Background(), c.ID())
	suite.Require().NoError(err)

	suite.Equal(c.ID(), loaded.ID())
	suite.Equal("Dana", loaded.Name())
	suite.Equal(customer.SegmentWholesale, loaded.Segment())
	suite.Empty(loaded.Orders())
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), 9999)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestGetWithOrders_LoadsTheFullHistory() {
	c := suite.newPersistedCustomer(customer.SegmentLoyal)

	for range 3 {
		o, err := order.NewOrder(c.ID(), decimal.NewFromInt(100))
		suite.Require().NoError(err)
		suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	}

	loaded, err := suite.repository.GetWithOrders(context.Background(), c.ID())
	suite.Require().NoError(err)

	suite.Equal(3, loaded.OrderCount())
	suite.Zero(loaded.DeliveredOrderCount())
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestGetWithOrders_CountsDeliveredOrders() {
	c := suite.newPersistedCustomer(customer.SegmentLoyal)

	for i := range 2 {
		o, err := order.NewOrder(c.ID(), decimal.NewFromInt(100))
		suite.Require().NoError(err)
		suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))

		if i == 0 {
			loaded, loadErr := suite.orderRepo.Get(context.Background(), o.ID())
			suite.Require().NoError(loadErr)
			suite.Require().NoError(loaded.TransitionTo(order.Processing))
			suite.Require().NoError(loaded.TransitionTo(order.Shipped))
			suite.Require().NoError(loaded.TransitionTo(order.Delivered))
			suite.Require().NoError(suite.orderRepo.Update(context.Background(), loaded))
		}
	}

	loaded, err := suite.repository.GetWithOrders(context.Background(), c.ID())
	suite.Require().NoError(err)

	suite.Equal(2, loaded.OrderCount())
	suite.Equal(1, loaded.DeliveredOrderCount())
}

func TestCustomerRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerRepositoryIntegrationTestSuite))
}

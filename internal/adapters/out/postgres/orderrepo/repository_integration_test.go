package orderrepo_test

import (
	"context"
	"testing"

	"seller/internal/adapters/out/postgres"
	"seller/internal/adapters/out/postgres/orderrepo"
	"seller/internal/adapters/out/postgres/pgtest"
	"seller/internal/core/domain/model/kernel"
	"seller/internal/core/domain/model/order"
	"seller/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite runs GormOrderRepository against a real PostgreSQL.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *pgtest.Database
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	pg, err := pgtest.Start(ctx)
	suite.Require().NoError(err)
	suite.pg = pg

	suite.Require().NoError(postgres.Migrate(ctx, pg.DB))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Return()
	suite.repository = orderrepo.NewGormOrderRepository(suite.pg.DB, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(buyerID string) *order.Order {
	buyer, err := order.NewBuyer("Ann", "555-0100", "1 Main St", buyerID)
	suite.Require().NoError(err)

	ten, _ := kernel.MoneyFromString("10.00")
	five, _ := kernel.MoneyFromString("5.00")
	o, err := order.NewOrder(kernel.NewUUID(), buyer, []order.LineItem{
		{ProductID: "A", ProductName: "Apple", UnitPrice: ten, Quantity: 1},
		{ProductID: "B", ProductName: "Banana", UnitPrice: five, Quantity: 2},
	})
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ThenGet_RoundTrips() {
	ctx := context.Background()
	o := suite.newOrder("buyer-1")

	suite.Require().NoError(suite.repository.Add(ctx, o))
	got, err := suite.repository.Get(ctx, o.ID())

	suite.Require().NoError(err)
	suite.True(got.ID().IsEqual(o.ID()))
	suite.Equal("buyer-1", got.Buyer().ID())
	suite.Equal("1 Main St", got.Buyer().Address())
	suite.Equal("20.00", got.Total().String())
	suite.Equal(order.New, got.Status())
	suite.Equal(order.PayWait, got.PayStatus())
	suite.True(o.CreatedAt().Equal(got.CreatedAt()))

	lines := got.Lines()
	suite.Require().Len(lines, 2)
	suite.Equal("A", lines[0].ProductID())
	suite.Equal("Banana", lines[1].ProductName())
	suite.Equal("5.00", lines[1].UnitPrice().String())
	suite.Equal(2, lines[1].Quantity())
	suite.True(lines[0].ID().IsEqual(o.Lines()[0].ID()))
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", o.ID(), o)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_Duplicate_ReturnsAlreadyExists() {
	ctx := context.Background()
	o := suite.newOrder("buyer-1")
	suite.Require().NoError(suite.repository.Add(ctx, o))

	err := suite.repository.Add(ctx, o)

	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_NotConstructed_ReturnsError() {
	err := suite.repository.Add(context.Background(), &order.Order{})

	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything, mock.Anything)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_Missing_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_HeaderWithoutLines_ReturnsEmptyLines() {
	ctx := context.Background()
	o := suite.newOrder("buyer-1")
	suite.Require().NoError(suite.repository.Add(ctx, o))
	suite.Require().NoError(suite.pg.DB.Exec("DELETE FROM order_detail WHERE order_id = ?", o.ID().Bytes()).Error)

	got, err := suite.repository.Get(ctx, o.ID())

	suite.Require().NoError(err)
	suite.False(got.HasLines())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsTransitions() {
	ctx := context.Background()
	o := suite.newOrder("buyer-1")
	suite.Require().NoError(suite.repository.Add(ctx, o))

	suite.Require().NoError(o.Pay())
	suite.Require().NoError(suite.repository.Update(ctx, o))
	suite.Require().NoError(o.Finish())
	suite.Require().NoError(suite.repository.Update(ctx, o))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Finished, got.Status())
	suite.Equal(order.PaySuccess, got.PayStatus())
	suite.True(o.UpdatedAt().Equal(got.UpdatedAt()))
	suite.Len(got.Lines(), 2)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_Missing_ReturnsNotFound() {
	o := suite.newOrder("buyer-1")

	err := suite.repository.Update(context.Background(), o)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDeleteHeader_CascadesToLines() {
	ctx := context.Background()
	o := suite.newOrder("buyer-1")
	suite.Require().NoError(suite.repository.Add(ctx, o))

	suite.Require().NoError(suite.pg.DB.Exec("DELETE FROM order_master WHERE id = ?", o.ID().Bytes()).Error)

	var count int64
	suite.Require().NoError(suite.pg.DB.Model(&orderrepo.LineDTO{}).Where("order_id = ?", o.ID().Bytes()).Count(&count).Error)
	suite.Zero(count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}

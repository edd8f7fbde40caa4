package queries_test

import (
	"context"
	"testing"
	"time"

	"mfgorder/internal/adapters/out/postgres/orderheadrepo"
	"mfgorder/internal/core/application/usecases/queries"
	"mfgorder/internal/core/domain/model/kernel"
	"mfgorder/internal/core/domain/model/orderhead"
	"mfgorder/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker is a no-op tracker for seeding through the repository.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.OrderKey, _ any) {}

type GetOrderHeaderQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderHeaderQueryHandler
	repo      *orderheadrepo.GormOrderHeaderRepository
}

func (suite *GetOrderHeaderQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderheadrepo.OrderHeaderDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrderHeaderQueryHandler(db)
	suite.repo = orderheadrepo.NewGormOrderHeaderRepository(db, &mockAggregateTracker{})
}

func (suite *GetOrderHeaderQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrderHeaderQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE order_headers").Error
	suite.Require().NoError(err)
}

func (suite *GetOrderHeaderQueryHandlerTestSuite) TestHandle_ExistingHeader_ReturnsFullReadModel() {
	ctx := context.Background()

	header := suite.seedHeader("MO0001", orderhead.Released, orderhead.DocumentsNotPrinted)

	query, err := queries.NewGetOrderHeaderQuery(100, "FAC1", "PROD-01", "MO0001")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(100, result.Company)
	suite.Equal("FAC1", result.Facility)
	suite.Equal("PROD-01", result.ProductCode)
	suite.Equal("MO0001", result.OrderNumber)
	suite.Equal(int(orderhead.Released), result.OrderStatus)
	suite.InDelta(25.0, result.OrderedQuantity, 0.001)
	suite.Equal(0, result.DocumentsPrinted)
	suite.Equal(header.LastModifiedDate().Int(), result.LastModifiedDate)
	suite.Equal(1, result.ChangeSequence)
	suite.Equal("RELEASER", result.ChangedBy)
}

func (suite *GetOrderHeaderQueryHandlerTestSuite) TestHandle_ReflectsCommittedUpdate() {
	ctx := context.Background()

	header := suite.seedHeader("MO0001", orderhead.Released, orderhead.DocumentsNotPrinted)

	printedOn, err := kernel.NewCalendarDate(20260825)
	suite.Require().NoError(err)
	suite.Require().NoError(header.SetDocumentsPrinted(orderhead.DocumentsPrinted, printedOn, "MWORKER"))
	suite.Require().NoError(suite.repo.Update(ctx, header))

	query, err := queries.NewGetOrderHeaderQuery(100, "FAC1", "PROD-01", "MO0001")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(1, result.DocumentsPrinted)
	suite.Equal(20260825, result.LastModifiedDate)
	suite.Equal(2, result.ChangeSequence)
	suite.Equal("MWORKER", result.ChangedBy)
}

func (suite *GetOrderHeaderQueryHandlerTestSuite) TestHandle_MissingHeader_ReturnsNotFoundError() {
	ctx := context.Background()

	query, err := queries.NewGetOrderHeaderQuery(100, "FAC1", "PROD-01", "NOPE")
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(ctx, query)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetOrderHeaderQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOrderHeaderQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetOrderHeaderQuery constructor")
}

func (suite *GetOrderHeaderQueryHandlerTestSuite) seedHeader(
	orderNumber string,
	status orderhead.Status,
	flag orderhead.PrintedFlag,
) *orderhead.Header {
	key, err := kernel.NewOrderKey(100, "FAC1", "PROD-01", orderNumber)
	suite.Require().NoError(err)

	created, err := kernel.NewCalendarDate(20260801)
	suite.Require().NoError(err)

	header, err := orderhead.RestoreHeader(key, status, 25, flag, created, 1, "RELEASER")
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repo.Add(context.Background(), header))
	return header
}

func TestGetOrderHeaderQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderHeaderQueryHandlerTestSuite))
}

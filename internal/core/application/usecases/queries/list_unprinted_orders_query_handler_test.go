package queries_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"mfgorder/internal/adapters/out/postgres/orderheadrepo"
	"mfgorder/internal/core/application/usecases/queries"
	"mfgorder/internal/core/domain/model/kernel"
	"mfgorder/internal/core/domain/model/orderhead"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type ListUnprintedOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.ListUnprintedOrdersQueryHandler
	repo      *orderheadrepo.GormOrderHeaderRepository
}

func (suite *ListUnprintedOrdersQueryHandlerTestSuite) SetupSuite() {
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

	suite.handler = queries.NewListUnprintedOrdersQueryHandler(db)
	suite.repo = orderheadrepo.NewGormOrderHeaderRepository(db, &mockAggregateTracker{})
}

func (suite *ListUnprintedOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *ListUnprintedOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE order_headers").Error
	suite.Require().NoError(err)
}

func (suite *ListUnprintedOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewListUnprintedOrdersQuery(100, "FAC1", 50)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *ListUnprintedOrdersQueryHandlerTestSuite) TestHandle_FiltersPrintedAndUnprintableHeaders() {
	// Only released/started headers with the flag cleared should surface.
	suite.seedHeader("MO0001", "FAC1", orderhead.Released, orderhead.DocumentsNotPrinted)
	suite.seedHeader("MO0002", "FAC1", orderhead.Started, orderhead.DocumentsNotPrinted)
	suite.seedHeader("MO0003", "FAC1", orderhead.Released, orderhead.DocumentsPrinted)
	suite.seedHeader("MO0004", "FAC1", orderhead.Planned, orderhead.DocumentsNotPrinted)
	suite.seedHeader("MO0005", "FAC1", orderhead.Completed, orderhead.DocumentsNotPrinted)

	query, err := queries.NewListUnprintedOrdersQuery(100, "FAC1", 50)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result, 2)
	suite.Equal("MO0001", result[0].OrderNumber)
	suite.Equal("MO0002", result[1].OrderNumber)
}

func (suite *ListUnprintedOrdersQueryHandlerTestSuite) TestHandle_FiltersOtherFacilities() {
	suite.seedHeader("MO0001", "FAC1", orderhead.Released, orderhead.DocumentsNotPrinted)
	suite.seedHeader("MO0002", "FAC2", orderhead.Released, orderhead.DocumentsNotPrinted)

	query, err := queries.NewListUnprintedOrdersQuery(100, "FAC1", 50)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result, 1)
	suite.Equal("MO0001", result[0].OrderNumber)
	suite.Equal("FAC1", result[0].Facility)
}

func (suite *ListUnprintedOrdersQueryHandlerTestSuite) TestHandle_OrdersByOrderNumberAndAppliesLimit() {
	for i := 5; i >= 1; i-- {
		suite.seedHeader(fmt.Sprintf("MO%04d", i), "FAC1", orderhead.Released, orderhead.DocumentsNotPrinted)
	}

	query, err := queries.NewListUnprintedOrdersQuery(100, "FAC1", 3)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result, 3)
	suite.Equal("MO0001", result[0].OrderNumber)
	suite.Equal("MO0002", result[1].OrderNumber)
	suite.Equal("MO0003", result[2].OrderNumber)
}

func (suite *ListUnprintedOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.ListUnprintedOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewListUnprintedOrdersQuery constructor")
}

func (suite *ListUnprintedOrdersQueryHandlerTestSuite) seedHeader(
	orderNumber string,
	facility string,
	status orderhead.Status,
	flag orderhead.PrintedFlag,
) {
	key, err := kernel.NewOrderKey(100, facility, "PROD-01", orderNumber)
	suite.Require().NoError(err)

	created, err := kernel.NewCalendarDate(20260801)
	suite.Require().NoError(err)

	header, err := orderhead.RestoreHeader(key, status, 25, flag, created, 1, "RELEASER")
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repo.Add(context.Background(), header))
}

func TestListUnprintedOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ListUnprintedOrdersQueryHandlerTestSuite))
}

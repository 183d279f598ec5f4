package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	postgres_adapter "recruitment/internal/adapters/out/postgres"
	"recruitment/internal/adapters/out/postgres/pgtest"
	"recruitment/internal/core/domain/model/asset"
	"recruitment/internal/core/domain/model/kernel"
	"recruitment/internal/core/domain/model/service"
	"recruitment/internal/core/ports"
	"recruitment/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises transactions against a real PostgreSQL.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	factory  ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(database.DB)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.ServiceRepository())
	suite.NotNil(uow1.ApplicationRepository())
	suite.NotNil(uow2.UserRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersists() {
	ctx := context.Background()
	svc := suite.newService()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ServiceRepository().Add(ctx, svc))
	suite.Require().NoError(uow.Commit(ctx))

	got, err := suite.factory.Create().ServiceRepository().Get(ctx, svc.ID())
	suite.Require().NoError(err)
	suite.Equal(svc.Name(), got.Name())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscards() {
	ctx := context.Background()
	svc := suite.newService()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ServiceRepository().Add(ctx, svc))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().ServiceRepository().Get(ctx, svc.ID())
	suite.Require().True(errors.Is(err, errs.ErrObjectNotFound))
}

func (suite *UnitOfWorkIntegrationTestSuite) newService() *service.Service {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	cover, err := asset.NewAsset(kernel.NewUUID(), "https://h/c/image/upload/v1/services/coverImage/a.png", asset.Image, "a.png", now)
	suite.Require().NoError(err)
	date, err := kernel.ParseInterviewDate("2025-06-12", "10:30 AM")
	suite.Require().NoError(err)
	svc, err := service.NewService(kernel.NewUUID(), "Backend Engineer", "Go services", cover, nil, nil,
		[]kernel.InterviewDate{date}, nil, now)
	suite.Require().NoError(err)
	return svc
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}

package servicerepo_test

import (
	"context"
	"testing"
	"time"

	"recruitment/internal/adapters/out/postgres/pgtest"
	"recruitment/internal/adapters/out/postgres/servicerepo"
	"recruitment/internal/core/domain/model/asset"
	"recruitment/internal/core/domain/model/kernel"
	"recruitment/internal/core/domain/model/service"
	"recruitment/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type ServiceRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *servicerepo.GormServiceRepository
}

func (suite *ServiceRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *ServiceRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
	suite.repository = servicerepo.NewGormServiceRepository(suite.database.DB)
}

func (suite *ServiceRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

var now = time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

func (suite *ServiceRepositoryIntegrationTestSuite) newAsset(url string, kind asset.ResourceKind) *asset.Asset {
	a, err := asset.RestoreAsset(kernel.NewUUID(), url, kind, "file", now)
	suite.Require().NoError(err)
	return a
}

func (suite *ServiceRepositoryIntegrationTestSuite) newService() *service.Service {
	first, err := kernel.ParseInterviewDate("2025-06-12", "10:30 AM")
	suite.Require().NoError(err)
	second, err := kernel.ParseInterviewDate("2025-06-13T00:00:00Z", "2:00 PM")
	suite.Require().NoError(err)
	lead, err := service.NewParticipant("Grace Hopper", "grace@example.com")
	suite.Require().NoError(err)

	svc, err := service.NewService(
		kernel.NewUUID(),
		"Backend Engineer",
		"Go services",
		suite.newAsset("https://h/c/image/upload/v1/services/coverImage/c.png", asset.Image),
		[]*asset.Asset{
			suite.newAsset("https://h/c/image/upload/v1/services/media/m1.jpg", asset.Image),
			suite.newAsset("https://h/c/video/upload/v1/services/media/m2.mp4", asset.Video),
			suite.newAsset("https://h/c/image/upload/v1/services/media/legacy.jpg", asset.UnknownKind),
		},
		[]*asset.Asset{suite.newAsset("https://h/c/raw/upload/v1/services/documents/offer.v2.pdf", asset.Raw)},
		[]kernel.InterviewDate{first, second},
		[]service.Participant{lead},
		now,
	)
	suite.Require().NoError(err)
	return svc
}

func (suite *ServiceRepositoryIntegrationTestSuite) TestAddAndGet_RoundTripsAggregate() {
	ctx := context.Background()
	svc := suite.newService()

	suite.Require().NoError(suite.repository.Add(ctx, svc))
	got, err := suite.repository.Get(ctx, svc.ID())

	suite.Require().NoError(err)
	suite.Equal(svc.Name(), got.Name())
	suite.Equal(svc.CoverImage().URL(), got.CoverImage().URL())
	suite.Require().Len(got.Media(), 3)
	for i, m := range svc.Media() {
		suite.Equal(m.URL(), got.Media()[i].URL(), "media order must be kept")
		suite.Equal(m.ResourceKind(), got.Media()[i].ResourceKind())
	}
	suite.Equal(asset.UnknownKind, got.Media()[2].ResourceKind())
	suite.Require().Len(got.Documents(), 1)
	suite.True(svc.Documents()[0].ID().IsEqual(got.Documents()[0].ID()))
	suite.Require().Len(got.InterviewDates(), 2)
	suite.Equal("2:00 PM", got.InterviewDates()[1].Time())
	suite.Require().Len(got.UsersInvolved(), 1)
	suite.Equal("grace@example.com", got.UsersInvolved()[0].Email())
}

func (suite *ServiceRepositoryIntegrationTestSuite) TestUpdate_ReplacesChildRows() {
	ctx := context.Background()
	svc := suite.newService()
	suite.Require().NoError(suite.repository.Add(ctx, svc))

	removed, err := svc.RemoveMedia([]kernel.UUID{svc.Media()[0].ID()}, now)
	suite.Require().NoError(err)
	suite.Require().Len(removed, 1)
	suite.Require().NoError(svc.AddDocuments(suite.newAsset("https://h/c/raw/upload/v2/services/documents/new.docx", asset.Raw)))
	suite.Require().NoError(svc.Rename("Platform Engineer", now))

	suite.Require().NoError(suite.repository.Update(ctx, svc))
	got, err := suite.repository.Get(ctx, svc.ID())

	suite.Require().NoError(err)
	suite.Equal("Platform Engineer", got.Name())
	suite.Len(got.Media(), 2)
	suite.Len(got.Documents(), 2)
	suite.Equal("https://h/c/raw/upload/v2/services/documents/new.docx", got.Documents()[1].URL())
}

func (suite *ServiceRepositoryIntegrationTestSuite) TestUpdate_MissingServiceIsNotFound() {
	err := suite.repository.Update(context.Background(), suite.newService())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ServiceRepositoryIntegrationTestSuite) TestDelete_CascadesChildren() {
	ctx := context.Background()
	svc := suite.newService()
	suite.Require().NoError(suite.repository.Add(ctx, svc))

	suite.Require().NoError(suite.repository.Delete(ctx, svc.ID()))

	_, err := suite.repository.Get(ctx, svc.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	var count int64
	suite.Require().NoError(suite.database.DB.Model(&servicerepo.ServiceAssetDTO{}).Count(&count).Error)
	suite.Zero(count)

	suite.Require().ErrorIs(suite.repository.Delete(ctx, svc.ID()), errs.ErrObjectNotFound)
}

func TestServiceRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(ServiceRepositoryIntegrationTestSuite))
}

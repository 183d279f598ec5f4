package commands_test

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"recruitment/internal/core/application/cleanup"
	"recruitment/internal/core/application/uploads"
	"recruitment/internal/core/application/usecases/commands"
	"recruitment/internal/core/domain/model/application"
	"recruitment/internal/core/domain/model/asset"
	"recruitment/internal/core/domain/model/kernel"
	"recruitment/internal/core/domain/model/service"
	"recruitment/internal/core/domain/model/user"
	"recruitment/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockServiceRepository struct{ mock.Mock }

func (m *MockServiceRepository) Add(ctx context.Context, s *service.Service) error {
	return m.Called(ctx, s).Error(0)
}
func (m *MockServiceRepository) Update(ctx context.Context, s *service.Service) error {
	return m.Called(ctx, s).Error(0)
}
func (m *MockServiceRepository) Get(ctx context.Context, id kernel.UUID) (*service.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Service), args.Error(1)
}
func (m *MockServiceRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockApplicationRepository struct{ mock.Mock }

func (m *MockApplicationRepository) Add(ctx context.Context, a *application.Application) error {
	return m.Called(ctx, a).Error(0)
}
func (m *MockApplicationRepository) Update(ctx context.Context, a *application.Application) error {
	return m.Called(ctx, a).Error(0)
}
func (m *MockApplicationRepository) Get(ctx context.Context, id kernel.UUID) (*application.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*application.Application), args.Error(1)
}
func (m *MockApplicationRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockApplicationRepository) CountByCVURL(ctx context.Context, url string) (int64, error) {
	args := m.Called(ctx, url)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}
func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}
func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}
func (m *MockUserRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockUserRepository) CountByCVURL(ctx context.Context, url string) (int64, error) {
	args := m.Called(ctx, url)
	return args.Get(0).(int64), args.Error(1)
}

// MockUoW satisfies every unit of work flavour of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
func (m *MockUoW) ServiceRepository() ports.ServiceRepository {
	return m.Called().Get(0).(ports.ServiceRepository)
}
func (m *MockUoW) ApplicationRepository() ports.ApplicationRepository {
	return m.Called().Get(0).(ports.ApplicationRepository)
}
func (m *MockUoW) UserRepository() ports.UserRepository {
	return m.Called().Get(0).(ports.UserRepository)
}

type MockServiceUoWFactory struct{ mock.Mock }

func (m *MockServiceUoWFactory) Create() commands.ServiceUoW {
	return m.Called().Get(0).(commands.ServiceUoW)
}

type MockApplicationUoWFactory struct{ mock.Mock }

func (m *MockApplicationUoWFactory) Create() commands.ApplicationUoW {
	return m.Called().Get(0).(commands.ApplicationUoW)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	return m.Called().Get(0).(commands.UserUoW)
}

type MockUploader struct{ mock.Mock }

func (m *MockUploader) Upload(ctx context.Context, owner asset.Owner, files []uploads.File) (uploads.Uploaded, error) {
	args := m.Called(ctx, owner, files)
	return args.Get(0).(uploads.Uploaded), args.Error(1)
}

type MockReconciler struct{ mock.Mock }

func (m *MockReconciler) Reconcile(ctx context.Context, set cleanup.AssetSet) cleanup.Report {
	return m.Called(ctx, set).Get(0).(cleanup.Report)
}

var testNow = time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestAsset(t *testing.T, url string, kind asset.ResourceKind) *asset.Asset {
	t.Helper()
	a, err := asset.NewAsset(kernel.NewUUID(), url, kind, "file", testNow)
	require.NoError(t, err)
	return a
}

func testDates(t *testing.T) []kernel.InterviewDate {
	t.Helper()
	d, err := kernel.ParseInterviewDate("2025-06-12", "10:30 AM")
	require.NoError(t, err)
	return []kernel.InterviewDate{d}
}

func testFile(field, name, contentType string) uploads.File {
	return uploads.File{
		Field:       field,
		Filename:    name,
		ContentType: contentType,
		Size:        4,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader("data")), nil
		},
	}
}

func testService(t *testing.T) *service.Service {
	t.Helper()
	s, err := service.NewService(
		kernel.NewUUID(),
		"Backend Engineer",
		"Go services",
		newTestAsset(t, "https://h/c/image/upload/v1/services/coverImage/old.png", asset.Image),
		[]*asset.Asset{newTestAsset(t, "https://h/c/image/upload/v1/services/media/m1.jpg", asset.Image)},
		[]*asset.Asset{newTestAsset(t, "https://h/c/raw/upload/v1/services/documents/d1.pdf", asset.Raw)},
		testDates(t),
		nil,
		testNow,
	)
	require.NoError(t, err)
	return s
}

func testApplication(t *testing.T, serviceID kernel.UUID, cv *asset.Asset) *application.Application {
	t.Helper()
	a, err := application.NewApplication(
		kernel.NewUUID(), "Ada Lovelace", "ada@example.com", serviceID, testDates(t)[0], cv, testNow,
	)
	require.NoError(t, err)
	return a
}

func testUser(t *testing.T, cv *asset.Asset) *user.User {
	t.Helper()
	u, err := user.RestoreUser(kernel.NewUUID(), "ada", "ada@example.com", user.RoleUser, cv, testNow)
	require.NoError(t, err)
	return u
}

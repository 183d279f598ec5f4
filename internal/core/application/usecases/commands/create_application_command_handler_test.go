package commands_test

import (
	"errors"
	"testing"

	"recruitment/internal/core/application/cleanup"
	"recruitment/internal/core/application/uploads"
	"recruitment/internal/core/application/usecases/commands"
	"recruitment/internal/core/domain/model/application"
	"recruitment/internal/core/domain/model/asset"
	"recruitment/internal/core/domain/model/kernel"
	"recruitment/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateApplicationCommandHandler_Handle_UploadedCV(t *testing.T) {
	// Arrange
	ctx := t.Context()
	svc := testService(t)
	files := []uploads.File{testFile("cv", "cv.pdf", "application/pdf")}
	cmd, err := commands.NewCreateApplicationCommand("Ada", "ada@example.com", svc.ID(), testDates(t)[0], nil, files)
	require.NoError(t, err)
	cv := newTestAsset(t, "https://h/c/raw/upload/v1/applications/cv/cv.pdf", asset.Raw)

	uploader := new(MockUploader)
	reconciler := new(MockReconciler)
	services := new(MockServiceRepository)
	applications := new(MockApplicationRepository)
	uow := new(MockUoW)
	factory := new(MockApplicationUoWFactory)

	factory.On("Create").Return(uow).Once()
	mock.InOrder(
		uploader.On("Upload", ctx, asset.OwnerApplication, files).Return(uploads.Uploaded{CV: cv}, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ServiceRepository").Return(services).Once(),
		services.On("Get", ctx, svc.ID()).Return(svc, nil).Once(),
		uow.On("ApplicationRepository").Return(applications).Once(),
		applications.On("Add", ctx, mock.MatchedBy(func(a *application.Application) bool {
			return a.CV() == cv && a.Status() == application.Pending && a.ID().IsEqual(cmd.ApplicationID())
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	// Act
	err = commands.NewCreateApplicationCommandHandler(factory, uploader, reconciler).Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	uploader.AssertExpectations(t)
	services.AssertExpectations(t)
	applications.AssertExpectations(t)
	uow.AssertExpectations(t)
	reconciler.AssertNotCalled(t, "Reconcile", mock.Anything, mock.Anything)
}

func TestCreateApplicationCommandHandler_Handle_ProfileCVIsSharedByURL(t *testing.T) {
	ctx := t.Context()
	svc := testService(t)
	profileCV := newTestAsset(t, "https://h/c/raw/upload/v4/users/cv/ada.pdf", asset.Raw)
	u := testUser(t, profileCV)
	userID := u.ID()
	cmd, err := commands.NewCreateApplicationCommand("Ada", "ada@example.com", svc.ID(), testDates(t)[0], &userID, nil)
	require.NoError(t, err)

	uploader := new(MockUploader)
	reconciler := new(MockReconciler)
	services := new(MockServiceRepository)
	users := new(MockUserRepository)
	applications := new(MockApplicationRepository)
	uow := new(MockUoW)
	factory := new(MockApplicationUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ServiceRepository").Return(services).Once()
	services.On("Get", ctx, svc.ID()).Return(svc, nil).Once()
	uow.On("UserRepository").Return(users).Once()
	users.On("Get", ctx, userID).Return(u, nil).Once()
	uow.On("ApplicationRepository").Return(applications).Once()
	applications.On("Add", ctx, mock.MatchedBy(func(a *application.Application) bool {
		return a.CV().URL() == profileCV.URL() && !a.CV().ID().IsEqual(profileCV.ID())
	})).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	err = commands.NewCreateApplicationCommandHandler(factory, uploader, reconciler).Handle(ctx, cmd)

	require.NoError(t, err)
	uploader.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
	applications.AssertExpectations(t)
	users.AssertExpectations(t)
}

func TestCreateApplicationCommandHandler_Handle_ProfileWithoutCV(t *testing.T) {
	ctx := t.Context()
	svc := testService(t)
	u := testUser(t, nil)
	userID := u.ID()
	cmd, err := commands.NewCreateApplicationCommand("Ada", "ada@example.com", svc.ID(), testDates(t)[0], &userID, nil)
	require.NoError(t, err)

	services := new(MockServiceRepository)
	users := new(MockUserRepository)
	uow := new(MockUoW)
	factory := new(MockApplicationUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ServiceRepository").Return(services).Once()
	services.On("Get", ctx, svc.ID()).Return(svc, nil).Once()
	uow.On("UserRepository").Return(users).Once()
	users.On("Get", ctx, userID).Return(u, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	err = commands.NewCreateApplicationCommandHandler(factory, new(MockUploader), new(MockReconciler)).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCreateApplicationCommandHandler_Handle_UnknownServiceRemovesUploadedCV(t *testing.T) {
	ctx := t.Context()
	serviceID := kernel.NewUUID()
	files := []uploads.File{testFile("cv", "cv.pdf", "application/pdf")}
	cmd, err := commands.NewCreateApplicationCommand("Ada", "ada@example.com", serviceID, testDates(t)[0], nil, files)
	require.NoError(t, err)
	cv := newTestAsset(t, "https://h/c/raw/upload/v1/applications/cv/cv.pdf", asset.Raw)

	uploader := new(MockUploader)
	reconciler := new(MockReconciler)
	services := new(MockServiceRepository)
	uow := new(MockUoW)
	factory := new(MockApplicationUoWFactory)

	factory.On("Create").Return(uow).Once()
	uploader.On("Upload", ctx, asset.OwnerApplication, files).Return(uploads.Uploaded{CV: cv}, nil).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ServiceRepository").Return(services).Once()
	services.On("Get", ctx, serviceID).Return(nil, errs.NewObjectNotFoundError("serviceId", serviceID)).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	reconciler.On("Reconcile", ctx, cleanup.AssetSet{CV: cv}).Return(cleanup.Report{}).Once()

	err = commands.NewCreateApplicationCommandHandler(factory, uploader, reconciler).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	reconciler.AssertExpectations(t)
}

func TestCreateApplicationCommandHandler_Handle_RejectedUpload(t *testing.T) {
	ctx := t.Context()
	files := []uploads.File{testFile("cv", "cv.exe", "application/x-msdownload")}
	cmd, err := commands.NewCreateApplicationCommand("Ada", "ada@example.com", kernel.NewUUID(), testDates(t)[0], nil, files)
	require.NoError(t, err)
	rejection := &asset.ValidationError{Field: "cv", ContentType: "application/x-msdownload"}

	uploader := new(MockUploader)
	factory := new(MockApplicationUoWFactory)
	uploader.On("Upload", ctx, asset.OwnerApplication, files).Return(uploads.Uploaded{}, rejection).Once()

	err = commands.NewCreateApplicationCommandHandler(factory, uploader, new(MockReconciler)).Handle(ctx, cmd)

	var verr *asset.ValidationError
	require.True(t, errors.As(err, &verr))
	factory.AssertNotCalled(t, "Create")
}

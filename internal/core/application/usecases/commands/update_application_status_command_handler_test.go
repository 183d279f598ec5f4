package commands_test

import (
	"testing"

	"recruitment/internal/core/application/usecases/commands"
	"recruitment/internal/core/domain/model/application"
	"recruitment/internal/core/domain/model/asset"
	"recruitment/internal/core/domain/model/kernel"
	"recruitment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateApplicationStatusCommand(t *testing.T) {
	_, err := commands.NewUpdateApplicationStatusCommand(kernel.NewUUID(), application.Unknown)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	cmd, err := commands.NewUpdateApplicationStatusCommand(kernel.NewUUID(), application.Approved)
	require.NoError(t, err)
	assert.Equal(t, application.Approved, cmd.Status())
}

func TestUpdateApplicationStatusCommandHandler_Handle(t *testing.T) {
	cvURL := "https://h/c/raw/upload/v1/applications/cv/cv.pdf"

	t.Run("should persist a changed status", func(t *testing.T) {
		ctx := t.Context()
		existing := testApplication(t, kernel.NewUUID(), newTestAsset(t, cvURL, asset.Raw))
		cmd, err := commands.NewUpdateApplicationStatusCommand(existing.ID(), application.Approved)
		require.NoError(t, err)

		repo := new(MockApplicationRepository)
		uow := new(MockUoW)
		factory := new(MockApplicationUoWFactory)
		factory.On("Create").Return(uow).Once()
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("ApplicationRepository").Return(repo).Once(),
			repo.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
			repo.On("Update", ctx, existing).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		err = commands.NewUpdateApplicationStatusCommandHandler(factory).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, application.Approved, existing.Status())
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("should not write an unchanged status", func(t *testing.T) {
		ctx := t.Context()
		existing := testApplication(t, kernel.NewUUID(), newTestAsset(t, cvURL, asset.Raw))
		_, err := existing.ChangeStatus(application.Rejected)
		require.NoError(t, err)
		cmd, err := commands.NewUpdateApplicationStatusCommand(existing.ID(), application.Rejected)
		require.NoError(t, err)

		repo := new(MockApplicationRepository)
		uow := new(MockUoW)
		factory := new(MockApplicationUoWFactory)
		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("ApplicationRepository").Return(repo).Once()
		repo.On("Get", ctx, existing.ID()).Return(existing, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		err = commands.NewUpdateApplicationStatusCommandHandler(factory).Handle(ctx, cmd)

		require.NoError(t, err)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("should refuse to go back to pending", func(t *testing.T) {
		ctx := t.Context()
		existing := testApplication(t, kernel.NewUUID(), newTestAsset(t, cvURL, asset.Raw))
		_, err := existing.ChangeStatus(application.Approved)
		require.NoError(t, err)
		cmd, err := commands.NewUpdateApplicationStatusCommand(existing.ID(), application.Pending)
		require.NoError(t, err)

		repo := new(MockApplicationRepository)
		uow := new(MockUoW)
		factory := new(MockApplicationUoWFactory)
		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("ApplicationRepository").Return(repo).Once()
		repo.On("Get", ctx, existing.ID()).Return(existing, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		err = commands.NewUpdateApplicationStatusCommandHandler(factory).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

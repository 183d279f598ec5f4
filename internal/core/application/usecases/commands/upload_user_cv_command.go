package commands

import (
	"errors"

	"recruitment/internal/core/application/uploads"
	"recruitment/internal/core/domain/model/asset"
	"recruitment/internal/core/domain/model/kernel"
	"recruitment/internal/pkg/errs"
	"recruitment/internal/pkg/guard"
)

var (
	ErrUploadUserCVCommandIsNotConstructed = errors.New(
		"UploadUserCVCommand must be created via NewUploadUserCVCommand constructor",
	)
	ErrUserCVFileIsRequired = errs.NewValueIsRequiredError("cv")
)

// UploadUserCVCommand stores a CV on a user profile, replacing the previous
// one.
type UploadUserCVCommand struct {
	userID kernel.UUID
	file   uploads.File

	guard guard.ConstructorGuard
}

func NewUploadUserCVCommand(userID kernel.UUID, files []uploads.File) (UploadUserCVCommand, error) {
	var cvFile *uploads.File
	for i := range files {
		if files[i].Field == string(asset.FieldCV) {
			cvFile = &files[i]
			break
		}
	}
	var fileErr error
	if cvFile == nil {
		fileErr = ErrUserCVFileIsRequired
	}

	if err := errors.Join(userID.Validate(), fileErr, checkFileFields(asset.OwnerUser, files)); err != nil {
		return UploadUserCVCommand{}, err
	}

	return UploadUserCVCommand{
		userID: userID,
		file:   *cvFile,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c UploadUserCVCommand) Validate() error {
	return c.guard.Validate(ErrUploadUserCVCommandIsNotConstructed)
}

func (c UploadUserCVCommand) UserID() kernel.UUID {
	return c.userID
}

func (c UploadUserCVCommand) File() uploads.File {
	return c.file
}

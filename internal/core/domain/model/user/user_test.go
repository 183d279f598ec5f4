package user_test

import (
	"testing"
	"time"

	"recruitment/internal/core/domain/model/asset"
	"recruitment/internal/core/domain/model/kernel"
	"recruitment/internal/core/domain/model/user"
	"recruitment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func cv(t *testing.T, url string) *asset.Asset {
	t.Helper()
	a, err := asset.NewAsset(kernel.NewUUID(), url, asset.Raw, "cv.pdf", createdAt)
	require.NoError(t, err)
	return a
}

func TestNewUser(t *testing.T) {
	t.Run("should normalize email and start without cv", func(t *testing.T) {
		u, err := user.NewUser(kernel.NewUUID(), " ada ", "Ada@Example.com", user.RoleUser, createdAt)

		require.NoError(t, err)
		assert.Equal(t, "ada", u.Username())
		assert.Equal(t, "ada@example.com", u.Email())
		assert.Nil(t, u.CV())
		assert.False(t, u.IsAdmin())
	})

	t.Run("should join every validation error", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "", "", user.UnknownRole, createdAt)

		require.ErrorIs(t, err, user.ErrUsernameIsRequired)
		require.ErrorIs(t, err, user.ErrEmailIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestParseRole(t *testing.T) {
	role, err := user.ParseRole("")
	require.NoError(t, err)
	assert.Equal(t, user.RoleUser, role)

	role, err = user.ParseRole("admin")
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, role)

	_, err = user.ParseRole("root")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestUser_ReplaceCV(t *testing.T) {
	u, err := user.NewUser(kernel.NewUUID(), "ada", "ada@example.com", user.RoleUser, createdAt)
	require.NoError(t, err)
	first := cv(t, "https://h/c/raw/upload/v1/users/cv/a.pdf")
	second := cv(t, "https://h/c/raw/upload/v2/users/cv/b.pdf")

	detached, err := u.ReplaceCV(first)
	require.NoError(t, err)
	assert.Nil(t, detached)

	detached, err = u.ReplaceCV(second)
	require.NoError(t, err)
	assert.Same(t, first, detached)
	assert.Same(t, second, u.CV())

	_, err = u.ReplaceCV(nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestUser_ChangeProfile(t *testing.T) {
	t.Run("should replace username email and role", func(t *testing.T) {
		// Arrange
		u, err := user.NewUser(kernel.NewUUID(), "ada", "ada@example.com", user.RoleUser, createdAt)
		require.NoError(t, err)

		// Act
		err = u.ChangeProfile(" grace ", "Grace@Example.com", user.RoleAdmin)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "grace", u.Username())
		assert.Equal(t, "grace@example.com", u.Email())
		assert.True(t, u.IsAdmin())
	})

	t.Run("should leave the user untouched when any value is invalid", func(t *testing.T) {
		// Arrange
		u, err := user.NewUser(kernel.NewUUID(), "ada", "ada@example.com", user.RoleUser, createdAt)
		require.NoError(t, err)

		// Act
		err = u.ChangeProfile("grace", "not an address", user.UnknownRole)

		// Assert
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, "ada", u.Username())
		assert.Equal(t, "ada@example.com", u.Email())
		assert.Equal(t, user.RoleUser, u.Role())
	})
}

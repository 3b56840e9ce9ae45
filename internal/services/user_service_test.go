package services

import (
	"testing"

	"github.com/ruanfv/portfolio/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserAuthentication(t *testing.T) {
	db := newTestDB(t)
	service := NewUserService(repositories.NewUserRepository(db))

	created, err := service.CreateUser("Admin", "admin@example.com", "admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", created.Password, "password must be stored hashed")

	t.Run("Valid credentials", func(t *testing.T) {
		user, err := service.Authenticate("admin@example.com", "admin123")
		require.NoError(t, err)
		assert.Equal(t, created.ID, user.ID)
	})

	t.Run("Wrong password", func(t *testing.T) {
		_, err := service.Authenticate("admin@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Unknown email fails identically", func(t *testing.T) {
		_, err := service.Authenticate("nobody@example.com", "admin123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

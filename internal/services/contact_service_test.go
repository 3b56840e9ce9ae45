package services

import (
	"testing"

	"github.com/ruanfv/portfolio/internal/models"
	"github.com/ruanfv/portfolio/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitMessage(t *testing.T) {
	db := newTestDB(t)
	service := NewContactService(repositories.NewContactMessageRepository(db))

	t.Run("Valid message is stored", func(t *testing.T) {
		message, err := service.SubmitMessage("Visitor", "visitor@example.com", "Hello there")
		require.NoError(t, err)
		assert.NotEmpty(t, message.ID)

		messages, err := service.ListMessages()
		require.NoError(t, err)
		require.Len(t, messages, 1)
		assert.Equal(t, "Hello there", messages[0].Message)
	})

	t.Run("Missing fields are rejected", func(t *testing.T) {
		_, err := service.SubmitMessage("", "visitor@example.com", "Hello")
		var validationErr *models.ValidationError
		assert.ErrorAs(t, err, &validationErr)

		_, err = service.SubmitMessage("Visitor", "", "Hello")
		assert.ErrorAs(t, err, &validationErr)

		_, err = service.SubmitMessage("Visitor", "visitor@example.com", "")
		assert.ErrorAs(t, err, &validationErr)
	})
}

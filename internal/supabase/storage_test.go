package supabase_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"fotomodel-backend/internal/supabase"
)

func TestStorageClient_WardrobePath(t *testing.T) {
	client, err := supabase.NewStorageClient("https://project.supabase.co/", "service-key", "wardrobe")
	assert.NoError(t, err)

	userID := uuid.New()
	path := client.WardrobePath(userID, "upload-123")

	assert.Equal(t, "users/"+userID.String()+"/wardrobe/upload-123", path)
}

func TestStorageClient_GetPublicURL(t *testing.T) {
	client, err := supabase.NewStorageClient("https://project.supabase.co", "service-key", "wardrobe")
	assert.NoError(t, err)

	url := client.GetPublicURL("users/abc/wardrobe/upload-123")

	assert.Equal(t,
		"https://project.supabase.co/storage/v1/object/public/wardrobe/users/abc/wardrobe/upload-123",
		url)
}

package supabase

import (
	"fmt"

	"github.com/google/uuid"
	storage "github.com/supabase-community/storage-go"
)

type StorageClient struct {
	client  *storage.Client
	bucket  string
	baseURL string
}

func NewStorageClient(supabaseURL, serviceKey, bucket string) (*StorageClient, error) {
	baseURL := supabaseURL
	if len(baseURL) > 0 && baseURL[len(baseURL)-1] == '/' {
		baseURL = baseURL[:len(baseURL)-1]
	}
	client := storage.NewClient(baseURL+"/storage/v1", serviceKey, nil)

	return &StorageClient{
		client:  client,
		bucket:  bucket,
		baseURL: baseURL,
	}, nil
}

// WardrobePath is where a user's wardrobe upload lives in the bucket.
func (s *StorageClient) WardrobePath(userID uuid.UUID, uploadID string) string {
	return fmt.Sprintf("users/%s/wardrobe/%s", userID.String(), uploadID)
}

func (s *StorageClient) GetPublicURL(path string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, path)
}

func (s *StorageClient) DeleteFile(path string) error {
	_, err := s.client.RemoveFile(s.bucket, []string{path})
	return err
}

package models

type GallerySaveRequest struct {
	GenerationResultID string `json:"generationResultId"`
	ImageURL           string `json:"imageUrl,omitempty"`
	ThumbnailURL       string `json:"thumbnailUrl,omitempty"`
}

type WardrobeSaveItemsRequest struct {
	UploadIDs    []string `json:"uploadIds"`
	CollectionID string   `json:"collectionId,omitempty"`
	Category     string   `json:"category,omitempty"`
}

type UpdateNameRequest struct {
	FullName string `json:"fullName"`
}

type UpdatePhoneRequest struct {
	Phone string `json:"phone"`
}

type GenerateBackgroundRequest struct {
	Prompt      string `json:"prompt"`
	AspectRatio string `json:"aspectRatio,omitempty" example:"3:4"`
}

type CreateGenerationRequest struct {
	Prompt string `json:"prompt"`
	// Optional metadata to store with the generation
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

type CreateConversationRequest struct {
	Title    string                 `json:"title,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

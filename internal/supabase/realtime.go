package supabase

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/supabase-community/supabase-go"
)

type RealtimeClient struct {
	client *supabase.Client
}

func NewRealtimeClient(client *supabase.Client) *RealtimeClient {
	return &RealtimeClient{
		client: client,
	}
}

func (r *RealtimeClient) PublishEvent(channel string, event string, payload map[string]interface{}) error {
	// The Go client has no direct Realtime publish. Row updates on the
	// generations table trigger Realtime for subscribed browsers; this hook
	// exists for explicit event publishing if the REST broadcast API is
	// adopted later.
	return nil
}

func (r *RealtimeClient) PublishUserEvent(userID uuid.UUID, event string, payload map[string]interface{}) error {
	channel := fmt.Sprintf("user:%s", userID.String())
	return r.PublishEvent(channel, event, payload)
}

// Event payloads

func GenerationStartedPayload(generationID uuid.UUID, creditsUsed int) map[string]interface{} {
	return map[string]interface{}{
		"generation_id": generationID.String(),
		"status":        "pending",
		"credits_used":  creditsUsed,
	}
}

func GenerationCompletedPayload(generationID uuid.UUID, resultCount int) map[string]interface{} {
	return map[string]interface{}{
		"generation_id": generationID.String(),
		"status":        "completed",
		"result_count":  resultCount,
	}
}

func GenerationFailedPayload(generationID uuid.UUID, errorMsg string) map[string]interface{} {
	return map[string]interface{}{
		"generation_id": generationID.String(),
		"status":        "failed",
		"error":         errorMsg,
	}
}

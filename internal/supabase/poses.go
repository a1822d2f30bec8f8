package supabase

import (
	"database/sql"
	"errors"
	"fmt"
)

// PoseSeed is one reference pose to install via the seed endpoint.
type PoseSeed struct {
	Slug        string
	Name        string
	Description string
	ImageURL    string
	SortOrder   int
}

// DefaultPoses is the reference pose catalog the seed endpoint installs.
var DefaultPoses = []PoseSeed{
	{Slug: "standing-front", Name: "Standing, front", Description: "Relaxed standing pose facing the camera", SortOrder: 1},
	{Slug: "standing-three-quarter", Name: "Standing, three-quarter", Description: "Body angled 45 degrees, face to camera", SortOrder: 2},
	{Slug: "walking", Name: "Walking", Description: "Mid-stride runway walk", SortOrder: 3},
	{Slug: "seated", Name: "Seated", Description: "Seated on a stool, upright posture", SortOrder: 4},
	{Slug: "leaning", Name: "Leaning", Description: "Leaning against a wall, arms crossed", SortOrder: 5},
	{Slug: "hands-in-pockets", Name: "Hands in pockets", Description: "Casual stance, hands in pockets", SortOrder: 6},
	{Slug: "over-shoulder", Name: "Over the shoulder", Description: "Back to camera, looking over the shoulder", SortOrder: 7},
	{Slug: "profile", Name: "Profile", Description: "Full side profile", SortOrder: 8},
}

// SeedPoses installs the pose catalog, skipping slugs that already exist.
// Safe to call repeatedly; returns the number of rows actually inserted.
func (d *DatabaseClient) SeedPoses(poses []PoseSeed) (int, error) {
	inserted := 0
	for _, pose := range poses {
		var id string
		err := d.db.QueryRow(`
			INSERT INTO poses (slug, name, description, image_url, sort_order)
			VALUES ($1, $2, NULLIF($3, ''), $4, $5)
			ON CONFLICT (slug) DO NOTHING
			RETURNING id
		`, pose.Slug, pose.Name, pose.Description, pose.ImageURL, pose.SortOrder).Scan(&id)
		if errors.Is(err, sql.ErrNoRows) {
			continue
		}
		if err != nil {
			return inserted, fmt.Errorf("failed to seed pose %s: %w", pose.Slug, err)
		}
		inserted++
	}

	return inserted, nil
}

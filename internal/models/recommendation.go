package models

import (
	"time"

	"github.com/google/uuid"
)

// UserCareerRecommendation is one row of the append-only recommendation log.
// Every recommendation request appends a fresh row per matched career; rows
// are never updated or deduplicated.
type UserCareerRecommendation struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	CareerID  uuid.UUID `db:"career_id"`
	Score     float64   `db:"score"` // raw cosine similarity in [0,1]
	CreatedAt time.Time `db:"created_at"`
}

package models

import (
	"github.com/google/uuid"
)

type Question struct {
	ID       uuid.UUID `db:"id"`
	Text     string    `db:"question_text"`
	Category string    `db:"category"` // e.g. "Empathy", "Logical Thinking"
	Options  []string  `db:"options"`  // optional, for multiple-choice rendering
}

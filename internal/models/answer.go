package models

import (
	"time"

	"github.com/google/uuid"
)

type UserAnswer struct {
	ID          uuid.UUID `db:"id"`
	UserID      uuid.UUID `db:"user_id"`
	QuestionID  uuid.UUID `db:"question_id"`
	AnswerValue float64   `db:"answer_value"` // answer on a scale, e.g. 1-5
	CreatedAt   time.Time `db:"created_at"`
}

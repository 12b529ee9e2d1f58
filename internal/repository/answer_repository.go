package repository

import (
	"context"

	"talent-compass/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type AnswerRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewAnswerRepository(db *pgxpool.Pool, logger *zap.Logger) *AnswerRepository {
	return &AnswerRepository{
		db:     db,
		logger: logger,
	}
}

func (r *AnswerRepository) CreateBatch(ctx context.Context, answers []*models.UserAnswer) error {
	if len(answers) == 0 {
		return nil
	}

	builder := squirrel.Insert("user_answers").
		Columns("id", "user_id", "question_id", "answer_value", "created_at").
		PlaceholderFormat(squirrel.Dollar)

	for _, ans := range answers {
		builder = builder.Values(ans.ID, ans.UserID, ans.QuestionID, ans.AnswerValue, ans.CreatedAt)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *AnswerRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.UserAnswer, error) {
	query := squirrel.Select("id", "user_id", "question_id", "answer_value", "created_at").
		From("user_answers").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at", "id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var answers []*models.UserAnswer
	for rows.Next() {
		var ans models.UserAnswer
		if err := rows.Scan(&ans.ID, &ans.UserID, &ans.QuestionID, &ans.AnswerValue, &ans.CreatedAt); err != nil {
			return nil, err
		}
		answers = append(answers, &ans)
	}

	return answers, rows.Err()
}

package repository

import (
	"context"

	"talent-compass/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type QuestionRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewQuestionRepository(db *pgxpool.Pool, logger *zap.Logger) *QuestionRepository {
	return &QuestionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *QuestionRepository) Create(ctx context.Context, question *models.Question) error {
	query := squirrel.Insert("questions").
		Columns("id", "question_text", "category", "options").
		Values(question.ID, question.Text, question.Category, question.Options).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *QuestionRepository) ListAll(ctx context.Context) ([]*models.Question, error) {
	query := squirrel.Select("id", "question_text", "category", "options").
		From("questions").
		OrderBy("category", "question_text").
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

	var questions []*models.Question
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.Text, &q.Category, &q.Options); err != nil {
			return nil, err
		}
		questions = append(questions, &q)
	}

	return questions, rows.Err()
}

// GetByIDs batch-resolves questions by id. Ids with no matching question
// are simply absent from the result map.
func (r *QuestionRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*models.Question, error) {
	result := make(map[uuid.UUID]*models.Question, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	query := squirrel.Select("id", "question_text", "category", "options").
		From("questions").
		Where(squirrel.Eq{"id": ids}).
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

	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.Text, &q.Category, &q.Options); err != nil {
			return nil, err
		}
		result[q.ID] = &q
	}

	return result, rows.Err()
}

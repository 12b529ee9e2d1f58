package repository

import (
	"context"

	"talent-compass/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type RecommendationRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewRecommendationRepository(db *pgxpool.Pool, logger *zap.Logger) *RecommendationRepository {
	return &RecommendationRepository{
		db:     db,
		logger: logger,
	}
}

// CreateBatch appends a request's matched scores to the recommendation log.
// All rows go through one multi-VALUES INSERT, so the batch commits
// atomically: a failure writes nothing. Rows are never updated or
// deduplicated against earlier requests.
func (r *RecommendationRepository) CreateBatch(ctx context.Context, recommendations []*models.UserCareerRecommendation) error {
	if len(recommendations) == 0 {
		return nil
	}

	builder := squirrel.Insert("user_career_recommendations").
		Columns("id", "user_id", "career_id", "score", "created_at").
		PlaceholderFormat(squirrel.Dollar)

	for _, rec := range recommendations {
		builder = builder.Values(rec.ID, rec.UserID, rec.CareerID, rec.Score, rec.CreatedAt)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

package repository

import (
	"context"

	"talent-compass/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type CareerRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewCareerRepository(db *pgxpool.Pool, logger *zap.Logger) *CareerRepository {
	return &CareerRepository{
		db:     db,
		logger: logger,
	}
}

func (r *CareerRepository) Create(ctx context.Context, career *models.CareerPath) error {
	query := squirrel.Insert("career_paths").
		Columns("id", "name", "description", "required_skills").
		Values(career.ID, career.Name, career.Description, career.RequiredSkills).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *CareerRepository) CreateCourse(ctx context.Context, course *models.Course) error {
	query := squirrel.Insert("courses").
		Columns("id", "career_path_id", "title", "description", "link").
		Values(course.ID, course.CareerPathID, course.Title, course.Description, course.Link).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// ListAll returns the full career catalogue with courses materialized, in a
// stable order. Courses are fetched in one batch query and assembled in
// memory, so callers never trigger further lookups.
func (r *CareerRepository) ListAll(ctx context.Context) ([]*models.CareerPath, error) {
	query := squirrel.Select("id", "name", "description", "required_skills").
		From("career_paths").
		OrderBy("name").
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

	var careers []*models.CareerPath
	byID := make(map[uuid.UUID]*models.CareerPath)
	for rows.Next() {
		var career models.CareerPath
		if err := rows.Scan(&career.ID, &career.Name, &career.Description, &career.RequiredSkills); err != nil {
			return nil, err
		}
		careers = append(careers, &career)
		byID[career.ID] = &career
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(careers) == 0 {
		return careers, nil
	}

	ids := make([]uuid.UUID, 0, len(careers))
	for _, career := range careers {
		ids = append(ids, career.ID)
	}

	courseQuery := squirrel.Select("id", "career_path_id", "title", "description", "link").
		From("courses").
		Where(squirrel.Eq{"career_path_id": ids}).
		OrderBy("title").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err = courseQuery.ToSql()
	if err != nil {
		return nil, err
	}

	courseRows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer courseRows.Close()

	for courseRows.Next() {
		var course models.Course
		if err := courseRows.Scan(&course.ID, &course.CareerPathID, &course.Title, &course.Description, &course.Link); err != nil {
			return nil, err
		}
		if career, ok := byID[course.CareerPathID]; ok {
			career.Courses = append(career.Courses, course)
		}
	}

	return careers, courseRows.Err()
}

package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"talent-compass/internal/dto"
	"talent-compass/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrNoAnswers     = errors.New("no answers found for user")
	ErrInvalidAnswer = errors.New("invalid answer value")
)

// AnswerProvider supplies and stores a user's questionnaire answers.
type AnswerProvider interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.UserAnswer, error)
	CreateBatch(ctx context.Context, answers []*models.UserAnswer) error
}

// QuestionProvider supplies questionnaire reference data. GetByIDs is a
// batch lookup; ids without a question are simply absent from the result.
type QuestionProvider interface {
	ListAll(ctx context.Context) ([]*models.Question, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*models.Question, error)
}

// CareerCatalogue supplies career paths with their courses fully
// materialized.
type CareerCatalogue interface {
	ListAll(ctx context.Context) ([]*models.CareerPath, error)
}

// RecommendationStore appends rows to the recommendation log. The batch
// must commit atomically: either every row of a request is written or none.
type RecommendationStore interface {
	CreateBatch(ctx context.Context, recs []*models.UserCareerRecommendation) error
}

type TalentService struct {
	answers     AnswerProvider
	questions   QuestionProvider
	catalogue   CareerCatalogue
	store       RecommendationStore
	defaultTopN int
	logger      *zap.Logger
}

func NewTalentService(
	answers AnswerProvider,
	questions QuestionProvider,
	catalogue CareerCatalogue,
	store RecommendationStore,
	defaultTopN int,
	logger *zap.Logger,
) *TalentService {
	return &TalentService{
		answers:     answers,
		questions:   questions,
		catalogue:   catalogue,
		store:       store,
		defaultTopN: defaultTopN,
		logger:      logger,
	}
}

// ListQuestions returns all questionnaire items.
func (s *TalentService) ListQuestions(ctx context.Context) ([]dto.QuestionResponse, error) {
	questions, err := s.questions.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	out := make([]dto.QuestionResponse, 0, len(questions))
	for _, q := range questions {
		options := q.Options
		if options == nil {
			options = []string{}
		}
		out = append(out, dto.QuestionResponse{
			ID:       q.ID.String(),
			Text:     q.Text,
			Category: q.Category,
			Options:  options,
		})
	}
	return out, nil
}

// SubmitAnswers validates and stores a questionnaire submission for the
// user. Every answer value must be finite.
func (s *TalentService) SubmitAnswers(ctx context.Context, userID uuid.UUID, req *dto.QuestionnaireSubmission) (int, error) {
	now := time.Now()
	rows := make([]*models.UserAnswer, 0, len(req.Answers))
	for _, ans := range req.Answers {
		questionID, err := uuid.Parse(ans.QuestionID)
		if err != nil {
			return 0, fmt.Errorf("%w: bad question id %q", ErrInvalidAnswer, ans.QuestionID)
		}
		if math.IsNaN(ans.AnswerValue) || math.IsInf(ans.AnswerValue, 0) {
			return 0, fmt.Errorf("%w: question %s has value %v", ErrInvalidAnswer, questionID, ans.AnswerValue)
		}
		rows = append(rows, &models.UserAnswer{
			ID:          uuid.New(),
			UserID:      userID,
			QuestionID:  questionID,
			AnswerValue: ans.AnswerValue,
			CreatedAt:   now,
		})
	}

	if err := s.answers.CreateBatch(ctx, rows); err != nil {
		return 0, fmt.Errorf("failed to store answers: %w", err)
	}

	s.logger.Info("Questionnaire answers stored",
		zap.String("user_id", userID.String()),
		zap.Int("count", len(rows)),
	)
	return len(rows), nil
}

// GetRecommendations computes the ranked career recommendations for a user.
//
// It sequences: fetch answers -> fetch questions -> build profile -> fetch
// catalogue -> rank -> persist matched scores -> return the top N. Careers
// with a positive raw similarity are appended to the recommendation log
// regardless of whether they survive the top-N cut; a persistence failure
// fails the whole request.
func (s *TalentService) GetRecommendations(ctx context.Context, userID uuid.UUID, topN int) ([]dto.CareerRecommendation, error) {
	if topN <= 0 {
		topN = s.defaultTopN
	}

	answers, err := s.answers.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch answers: %w", err)
	}
	if len(answers) == 0 {
		return nil, ErrNoAnswers
	}

	questionIDs := make([]uuid.UUID, 0, len(answers))
	seen := make(map[uuid.UUID]struct{}, len(answers))
	for _, ans := range answers {
		if _, ok := seen[ans.QuestionID]; ok {
			continue
		}
		seen[ans.QuestionID] = struct{}{}
		questionIDs = append(questionIDs, ans.QuestionID)
	}

	questions, err := s.questions.GetByIDs(ctx, questionIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch questions: %w", err)
	}

	profile, err := BuildProfile(answers, questions)
	if err != nil {
		return nil, err
	}

	catalogue, err := s.catalogue.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch career catalogue: %w", err)
	}

	recommendations, matched := RankCareers(profile, catalogue, topN)

	if len(matched) > 0 {
		now := time.Now()
		rows := make([]*models.UserCareerRecommendation, 0, len(matched))
		for _, m := range matched {
			rows = append(rows, &models.UserCareerRecommendation{
				ID:        uuid.New(),
				UserID:    userID,
				CareerID:  m.CareerID,
				Score:     m.Score,
				CreatedAt: now,
			})
		}
		if err := s.store.CreateBatch(ctx, rows); err != nil {
			return nil, fmt.Errorf("failed to persist recommendations: %w", err)
		}
	}

	s.logger.Info("Career recommendations computed",
		zap.String("user_id", userID.String()),
		zap.Int("categories", len(profile)),
		zap.Int("careers_scored", len(catalogue)),
		zap.Int("careers_matched", len(matched)),
		zap.Int("returned", len(recommendations)),
	)

	return recommendations, nil
}

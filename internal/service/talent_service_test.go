package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"talent-compass/internal/dto"
	"talent-compass/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubAnswers struct {
	answers   []*models.UserAnswer
	err       error
	submitted []*models.UserAnswer
}

func (s *stubAnswers) ListByUser(_ context.Context, _ uuid.UUID) ([]*models.UserAnswer, error) {
	return s.answers, s.err
}

func (s *stubAnswers) CreateBatch(_ context.Context, answers []*models.UserAnswer) error {
	s.submitted = append(s.submitted, answers...)
	return s.err
}

type stubQuestions struct {
	questions map[uuid.UUID]*models.Question
}

func (s *stubQuestions) ListAll(_ context.Context) ([]*models.Question, error) {
	out := make([]*models.Question, 0, len(s.questions))
	for _, q := range s.questions {
		out = append(out, q)
	}
	return out, nil
}

func (s *stubQuestions) GetByIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]*models.Question, error) {
	result := make(map[uuid.UUID]*models.Question)
	for _, id := range ids {
		if q, ok := s.questions[id]; ok {
			result[id] = q
		}
	}
	return result, nil
}

type stubCatalogue struct {
	careers []*models.CareerPath
}

func (s *stubCatalogue) ListAll(_ context.Context) ([]*models.CareerPath, error) {
	return s.careers, nil
}

type stubStore struct {
	rows  []*models.UserCareerRecommendation
	calls int
	err   error
}

func (s *stubStore) CreateBatch(_ context.Context, recs []*models.UserCareerRecommendation) error {
	s.calls++
	if s.err != nil {
		return s.err
	}
	s.rows = append(s.rows, recs...)
	return nil
}

type fixture struct {
	answers   *stubAnswers
	questions *stubQuestions
	catalogue *stubCatalogue
	store     *stubStore
	service   *TalentService
}

func newFixture(answers []*models.UserAnswer, questions map[uuid.UUID]*models.Question, careers []*models.CareerPath) *fixture {
	f := &fixture{
		answers:   &stubAnswers{answers: answers},
		questions: &stubQuestions{questions: questions},
		catalogue: &stubCatalogue{careers: careers},
		store:     &stubStore{},
	}
	f.service = NewTalentService(f.answers, f.questions, f.catalogue, f.store, 5, zap.NewNop())
	return f
}

func TestGetRecommendationsNoAnswers(t *testing.T) {
	f := newFixture(nil, nil, nil)

	_, err := f.service.GetRecommendations(context.Background(), uuid.New(), 0)
	require.ErrorIs(t, err, ErrNoAnswers)
	require.Zero(t, f.store.calls)
}

func TestGetRecommendationsInvalidStoredAnswer(t *testing.T) {
	q := uuid.New()
	f := newFixture(
		[]*models.UserAnswer{{QuestionID: q, AnswerValue: math.NaN()}},
		map[uuid.UUID]*models.Question{q: {ID: q, Category: "x"}},
		nil,
	)

	_, err := f.service.GetRecommendations(context.Background(), uuid.New(), 0)
	require.ErrorIs(t, err, ErrInvalidAnswer)
	require.Zero(t, f.store.calls)
}

func TestGetRecommendationsPersistsBeyondTopN(t *testing.T) {
	q := uuid.New()
	careers := []*models.CareerPath{
		{ID: uuid.New(), Name: "A", RequiredSkills: map[string]float64{"x": 1}},
		{ID: uuid.New(), Name: "B", RequiredSkills: map[string]float64{"x": 2}},
		{ID: uuid.New(), Name: "C", RequiredSkills: map[string]float64{"x": 3}},
	}
	f := newFixture(
		[]*models.UserAnswer{{QuestionID: q, AnswerValue: 4}},
		map[uuid.UUID]*models.Question{q: {ID: q, Category: "x"}},
		careers,
	)

	userID := uuid.New()
	recs, err := f.service.GetRecommendations(context.Background(), userID, 1)
	require.NoError(t, err)
	require.Len(t, recs, 1)

	// All three careers scored > 0, so all three rows are logged even
	// though only one recommendation is returned.
	require.Len(t, f.store.rows, 3)
	for i, row := range f.store.rows {
		require.Equal(t, userID, row.UserID)
		require.Equal(t, careers[i].ID, row.CareerID)
		require.Greater(t, row.Score, 0.0)
	}
}

func TestGetRecommendationsEmptyCatalogue(t *testing.T) {
	q := uuid.New()
	f := newFixture(
		[]*models.UserAnswer{{QuestionID: q, AnswerValue: 4}},
		map[uuid.UUID]*models.Question{q: {ID: q, Category: "x"}},
		nil,
	)

	recs, err := f.service.GetRecommendations(context.Background(), uuid.New(), 0)
	require.NoError(t, err)
	require.Empty(t, recs)
	require.Zero(t, f.store.calls)
}

func TestGetRecommendationsPersistenceFailure(t *testing.T) {
	q := uuid.New()
	f := newFixture(
		[]*models.UserAnswer{{QuestionID: q, AnswerValue: 4}},
		map[uuid.UUID]*models.Question{q: {ID: q, Category: "x"}},
		[]*models.CareerPath{{ID: uuid.New(), Name: "A", RequiredSkills: map[string]float64{"x": 1}}},
	)
	f.store.err = errors.New("connection reset")

	_, err := f.service.GetRecommendations(context.Background(), uuid.New(), 0)
	require.Error(t, err)
	require.Empty(t, f.store.rows)
}

func TestGetRecommendationsEndToEnd(t *testing.T) {
	logical1, logical2, empathy := uuid.New(), uuid.New(), uuid.New()
	questions := map[uuid.UUID]*models.Question{
		logical1: {ID: logical1, Category: "Logical Thinking"},
		logical2: {ID: logical2, Category: "Logical Thinking"},
		empathy:  {ID: empathy, Category: "Empathy"},
	}
	answers := []*models.UserAnswer{
		{QuestionID: logical1, AnswerValue: 4},
		{QuestionID: logical2, AnswerValue: 2},
		{QuestionID: empathy, AnswerValue: 5},
	}
	developer := &models.CareerPath{ID: uuid.New(), Name: "Software Developer", RequiredSkills: map[string]float64{"Logical Thinking": 5}}
	counselor := &models.CareerPath{ID: uuid.New(), Name: "Counselor", RequiredSkills: map[string]float64{"Empathy": 5}}

	f := newFixture(answers, questions, []*models.CareerPath{developer, counselor})

	userID := uuid.New()
	recs, err := f.service.GetRecommendations(context.Background(), userID, 0)
	require.NoError(t, err)

	// Profile is {Logical Thinking: 3, Empathy: 5}, |profile| = sqrt(34).
	// Counselor: 5*5 / (sqrt(34)*5) = 5/sqrt(34); Developer: 3/sqrt(34).
	counselorSim := 5 / math.Sqrt(34)
	developerSim := 3 / math.Sqrt(34)

	require.Len(t, recs, 2)
	require.Equal(t, "Counselor", recs[0].Title)
	require.Equal(t, "Software Developer", recs[1].Title)
	require.Equal(t, matchScore(counselorSim), recs[0].MatchScore)
	require.Equal(t, matchScore(developerSim), recs[1].MatchScore)

	require.Len(t, f.store.rows, 2)
	require.Equal(t, developer.ID, f.store.rows[0].CareerID)
	require.InDelta(t, developerSim, f.store.rows[0].Score, 1e-12)
	require.Equal(t, counselor.ID, f.store.rows[1].CareerID)
	require.InDelta(t, counselorSim, f.store.rows[1].Score, 1e-12)
}

func TestSubmitAnswersRejectsNonFinite(t *testing.T) {
	f := newFixture(nil, nil, nil)

	_, err := f.service.SubmitAnswers(context.Background(), uuid.New(), &dto.QuestionnaireSubmission{
		Answers: []dto.AnswerSubmission{{QuestionID: uuid.New().String(), AnswerValue: math.Inf(1)}},
	})
	require.ErrorIs(t, err, ErrInvalidAnswer)
	require.Empty(t, f.answers.submitted)
}

func TestSubmitAnswersRejectsBadQuestionID(t *testing.T) {
	f := newFixture(nil, nil, nil)

	_, err := f.service.SubmitAnswers(context.Background(), uuid.New(), &dto.QuestionnaireSubmission{
		Answers: []dto.AnswerSubmission{{QuestionID: "not-a-uuid", AnswerValue: 3}},
	})
	require.ErrorIs(t, err, ErrInvalidAnswer)
}

func TestSubmitAnswersStoresRows(t *testing.T) {
	f := newFixture(nil, nil, nil)
	userID := uuid.New()
	q1, q2 := uuid.New(), uuid.New()

	accepted, err := f.service.SubmitAnswers(context.Background(), userID, &dto.QuestionnaireSubmission{
		Answers: []dto.AnswerSubmission{
			{QuestionID: q1.String(), AnswerValue: 4},
			{QuestionID: q2.String(), AnswerValue: 2.5},
		},
	})
	require.NoError(t, err)
	require.Equal(t, 2, accepted)
	require.Len(t, f.answers.submitted, 2)
	require.Equal(t, userID, f.answers.submitted[0].UserID)
	require.Equal(t, q1, f.answers.submitted[0].QuestionID)
	require.Equal(t, 2.5, f.answers.submitted[1].AnswerValue)
}

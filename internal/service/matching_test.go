package service

import (
	"math"
	"testing"

	"talent-compass/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestSimilarityZeroVectors(t *testing.T) {
	require.Equal(t, 0.0, Similarity(nil, map[string]float64{"a": 1}))
	require.Equal(t, 0.0, Similarity(map[string]float64{"a": 1}, nil))
	require.Equal(t, 0.0, Similarity(map[string]float64{}, map[string]float64{}))
	require.Equal(t, 0.0, Similarity(map[string]float64{"a": 0}, map[string]float64{"a": 1}))
}

func TestSimilaritySelf(t *testing.T) {
	v := map[string]float64{"Empathy": 3.5, "Creativity": 1.25, "Leadership": 4}
	require.InDelta(t, 1.0, Similarity(v, v), 1e-12)
}

func TestSimilarityDotProductOverUserKeysOnly(t *testing.T) {
	user := map[string]float64{"a": 2}

	// A career key the user never answered about contributes nothing to
	// the dot product.
	require.Equal(t, 0.0, Similarity(user, map[string]float64{"b": 99}))

	// Two careers whose vectors differ only in user-absent keys of equal
	// weight score identically: those keys enter the career magnitude but
	// never the dot product.
	left := Similarity(user, map[string]float64{"a": 1, "b": 2})
	right := Similarity(user, map[string]float64{"a": 1, "c": 2})
	require.Equal(t, left, right)
	require.InDelta(t, 1/math.Sqrt(5), left, 1e-12)
}

func TestBuildProfileMeans(t *testing.T) {
	q1, q2, q3 := uuid.New(), uuid.New(), uuid.New()
	questions := map[uuid.UUID]*models.Question{
		q1: {ID: q1, Category: "x"},
		q2: {ID: q2, Category: "x"},
		q3: {ID: q3, Category: "y"},
	}
	answers := []*models.UserAnswer{
		{QuestionID: q1, AnswerValue: 2},
		{QuestionID: q2, AnswerValue: 4},
		{QuestionID: q3, AnswerValue: 5},
	}

	profile, err := BuildProfile(answers, questions)
	require.NoError(t, err)
	require.Equal(t, map[string]float64{"x": 3, "y": 5}, profile)
}

func TestBuildProfileSkipsUnresolvedAnswers(t *testing.T) {
	q1 := uuid.New()
	questions := map[uuid.UUID]*models.Question{
		q1: {ID: q1, Category: "x"},
	}
	answers := []*models.UserAnswer{
		{QuestionID: q1, AnswerValue: 3},
		{QuestionID: uuid.New(), AnswerValue: 100}, // no matching question
	}

	profile, err := BuildProfile(answers, questions)
	require.NoError(t, err)
	require.Equal(t, map[string]float64{"x": 3}, profile)
}

func TestBuildProfileEmpty(t *testing.T) {
	profile, err := BuildProfile(nil, nil)
	require.NoError(t, err)
	require.Empty(t, profile)
}

func TestBuildProfileRejectsNonFinite(t *testing.T) {
	q1 := uuid.New()
	questions := map[uuid.UUID]*models.Question{
		q1: {ID: q1, Category: "x"},
	}

	for _, value := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := BuildProfile([]*models.UserAnswer{{QuestionID: q1, AnswerValue: value}}, questions)
		require.ErrorIs(t, err, ErrInvalidAnswer)
	}
}

func TestRankCareersOrderAndTies(t *testing.T) {
	profile := map[string]float64{"a": 1}
	a := &models.CareerPath{ID: uuid.New(), Name: "A", RequiredSkills: map[string]float64{"a": 1, "b": math.Sqrt(3)}} // 0.5
	b := &models.CareerPath{ID: uuid.New(), Name: "B", RequiredSkills: map[string]float64{"a": 4, "b": 3}}            // 0.8
	c := &models.CareerPath{ID: uuid.New(), Name: "C", RequiredSkills: map[string]float64{"a": 8, "b": 6}}            // 0.8

	recs, matched := RankCareers(profile, []*models.CareerPath{a, b, c}, 2)

	require.Len(t, recs, 2)
	require.Equal(t, "B", recs[0].Title)
	require.Equal(t, "C", recs[1].Title)
	require.Equal(t, 80.0, recs[0].MatchScore)
	require.Equal(t, 80.0, recs[1].MatchScore)

	// Every positive score is queued for persistence, in catalogue order
	// and unaffected by the top-N cut.
	require.Len(t, matched, 3)
	require.Equal(t, a.ID, matched[0].CareerID)
	require.Equal(t, b.ID, matched[1].CareerID)
	require.Equal(t, c.ID, matched[2].CareerID)
	require.InDelta(t, 0.5, matched[0].Score, 1e-12)
}

func TestRankCareersEmptyCatalogue(t *testing.T) {
	recs, matched := RankCareers(map[string]float64{"a": 1}, nil, 5)
	require.Empty(t, recs)
	require.Empty(t, matched)
}

func TestRankCareersEmptyProfile(t *testing.T) {
	catalogue := []*models.CareerPath{
		{ID: uuid.New(), Name: "A", RequiredSkills: map[string]float64{"a": 1}},
		{ID: uuid.New(), Name: "B", RequiredSkills: map[string]float64{"b": 2}},
	}

	recs, matched := RankCareers(map[string]float64{}, catalogue, 5)

	// Every career is still scored; all at zero, nothing persisted.
	require.Len(t, recs, 2)
	require.Equal(t, 0.0, recs[0].MatchScore)
	require.Equal(t, 0.0, recs[1].MatchScore)
	require.Empty(t, matched)
}

func TestRankCareersCopiesCourses(t *testing.T) {
	career := &models.CareerPath{
		ID:             uuid.New(),
		Name:           "Designer",
		RequiredSkills: map[string]float64{"Creativity": 5},
		Courses: []models.Course{
			{Title: "Graphic Design Masterclass", Description: "Become a professional graphic designer.", Link: "https://example.com/graphic-design"},
		},
	}

	recs, _ := RankCareers(map[string]float64{"Creativity": 4}, []*models.CareerPath{career}, 5)

	require.Len(t, recs, 1)
	require.Len(t, recs[0].Courses, 1)
	require.Equal(t, "Graphic Design Masterclass", recs[0].Courses[0].Title)
	require.Equal(t, "https://example.com/graphic-design", recs[0].Courses[0].Link)
}

func TestMatchScoreRoundsHalfAwayFromZero(t *testing.T) {
	require.Equal(t, 12.35, matchScore(0.12345))
	require.Equal(t, 50.0, matchScore(0.5))
	require.Equal(t, 100.0, matchScore(1))
	require.Equal(t, 0.01, matchScore(0.00005))
}

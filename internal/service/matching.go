package service

import (
	"fmt"
	"math"
	"sort"

	"talent-compass/internal/dto"
	"talent-compass/internal/models"

	"github.com/google/uuid"
)

// Similarity computes the cosine similarity between a user's talent profile
// and a career's required-skills vector.
//
// The dot product runs over the user vector's keys only: a category present
// only on the career side contributes nothing. Either vector having zero
// magnitude (including the empty vector) yields 0.
func Similarity(userVector, careerVector map[string]float64) float64 {
	var dot float64
	for category, value := range userVector {
		dot += value * careerVector[category]
	}

	var userMag, careerMag float64
	for _, value := range userVector {
		userMag += value * value
	}
	for _, value := range careerVector {
		careerMag += value * value
	}
	userMag = math.Sqrt(userMag)
	careerMag = math.Sqrt(careerMag)

	if userMag == 0 || careerMag == 0 {
		return 0
	}

	return dot / (userMag * careerMag)
}

// BuildProfile reduces a user's answers to a per-category mean vector.
// Answers whose question id is missing from questions are skipped; a
// non-finite answer value fails the whole build with ErrInvalidAnswer.
func BuildProfile(answers []*models.UserAnswer, questions map[uuid.UUID]*models.Question) (map[string]float64, error) {
	sums := make(map[string]float64)
	counts := make(map[string]int)

	for _, ans := range answers {
		if math.IsNaN(ans.AnswerValue) || math.IsInf(ans.AnswerValue, 0) {
			return nil, fmt.Errorf("%w: question %s has value %v", ErrInvalidAnswer, ans.QuestionID, ans.AnswerValue)
		}
		question, ok := questions[ans.QuestionID]
		if !ok {
			continue
		}
		sums[question.Category] += ans.AnswerValue
		counts[question.Category]++
	}

	profile := make(map[string]float64, len(sums))
	for category, sum := range sums {
		profile[category] = sum / float64(counts[category])
	}
	return profile, nil
}

// CareerScore is a (career, raw similarity) pair queued for the
// recommendation log.
type CareerScore struct {
	CareerID uuid.UUID
	Score    float64
}

// RankCareers scores every career in the catalogue against the profile and
// returns the top-N recommendations sorted by match score descending. The
// sort is stable, so careers with equal scores keep catalogue order.
//
// The second return value lists every career whose raw similarity is
// positive, in catalogue order and independent of the top-N cut; it is what
// gets persisted.
func RankCareers(profile map[string]float64, catalogue []*models.CareerPath, topN int) ([]dto.CareerRecommendation, []CareerScore) {
	recommendations := make([]dto.CareerRecommendation, 0, len(catalogue))
	var matched []CareerScore

	for _, career := range catalogue {
		score := Similarity(profile, career.RequiredSkills)

		courses := make([]dto.CourseInfo, 0, len(career.Courses))
		for _, course := range career.Courses {
			courses = append(courses, dto.CourseInfo{
				Title:       course.Title,
				Description: course.Description,
				Link:        course.Link,
			})
		}

		recommendations = append(recommendations, dto.CareerRecommendation{
			CareerID:   career.ID.String(),
			Title:      career.Name,
			MatchScore: matchScore(score),
			Courses:    courses,
		})

		if score > 0 {
			matched = append(matched, CareerScore{CareerID: career.ID, Score: score})
		}
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].MatchScore > recommendations[j].MatchScore
	})

	if topN > 0 && len(recommendations) > topN {
		recommendations = recommendations[:topN]
	}
	return recommendations, matched
}

// matchScore scales a raw similarity to a 0-100 percentage rounded to two
// decimal places, half away from zero.
func matchScore(score float64) float64 {
	return math.Round(score*100*100) / 100
}

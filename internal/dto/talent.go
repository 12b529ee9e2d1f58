package dto

type QuestionResponse struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	Category string   `json:"category"`
	Options  []string `json:"options"`
}

type AnswerSubmission struct {
	QuestionID  string  `json:"question_id" validate:"required,uuid"`
	AnswerValue float64 `json:"answer_value" validate:"required"`
}

type QuestionnaireSubmission struct {
	Answers []AnswerSubmission `json:"answers" validate:"required,min=1"`
}

type SubmitAnswersResponse struct {
	Accepted int `json:"accepted"`
}

type CourseInfo struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

type CareerRecommendation struct {
	CareerID string `json:"career_id"`
	Title    string `json:"title"`
	// MatchScore is the cosine similarity scaled to 0-100, rounded to two
	// decimal places.
	MatchScore float64      `json:"match_score"`
	Courses    []CourseInfo `json:"courses"`
}

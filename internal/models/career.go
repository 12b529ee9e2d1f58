package models

import (
	"github.com/google/uuid"
)

type CareerPath struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	// RequiredSkills is a sparse vector over talent category names.
	// Categories absent from the map are treated as zero.
	RequiredSkills map[string]float64 `db:"required_skills"`
	Courses        []Course
}

type Course struct {
	ID           uuid.UUID `db:"id"`
	CareerPathID uuid.UUID `db:"career_path_id"`
	Title        string    `db:"title"`
	Description  string    `db:"description"`
	Link         string    `db:"link"`
}

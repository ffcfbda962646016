package models

import "time"

type Vacancy struct {
	ID           int
	Position     string
	Company      string
	Salary       string
	Requirements string
	Description  string
	PubDate      string
}

func NewVacancy(position, company, salary, requirements, description string, now time.Time) Vacancy {
	return Vacancy{
		Position:     position,
		Company:      company,
		Salary:       salary,
		Requirements: requirements,
		Description:  description,
		PubDate:      now.Format(DateLayout),
	}
}

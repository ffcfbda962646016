package models

import "time"

// DateLayout is the format of every date column.
const DateLayout = "2006-01-02"

// Candidate is a job seeker. Experience holds the operator's raw input: the column has INTEGER
// affinity, so numeric text is stored as a number and anything else is kept as typed.
type Candidate struct {
	ID         int
	FullName   string
	BirthDate  string
	Skills     string
	Experience string
	Phone      string
	Email      string
	RegDate    string
}

func NewCandidate(fullName, birthDate, skills, experience, phone, email string, now time.Time) Candidate {
	return Candidate{
		FullName:   fullName,
		BirthDate:  birthDate,
		Skills:     skills,
		Experience: experience,
		Phone:      phone,
		Email:      email,
		RegDate:    now.Format(DateLayout),
	}
}

// Brief is the id and display label used in pick lists.
type Brief struct {
	ID    int
	Label string
}

package models

import (
	"github.com/samber/lo"
	"strings"
	"time"
)

// ApplicationStatus is free text. The constants are the values suggested to the operator; any
// other text is stored as typed.
type ApplicationStatus string

const (
	UnderReview ApplicationStatus = "Under review"
	Accepted    ApplicationStatus = "Accepted"
	Rejected    ApplicationStatus = "Rejected"
)

var suggestedStatuses = []ApplicationStatus{UnderReview, Accepted, Rejected}

// StatusPrompt renders the suggestions as "Under review/Accepted/Rejected".
func StatusPrompt() string {
	return strings.Join(lo.Map(suggestedStatuses, func(s ApplicationStatus, _ int) string {
		return string(s)
	}), "/")
}

type Application struct {
	ID          int
	CandidateID int
	VacancyID   int
	Status      ApplicationStatus
	AppDate     string
}

func NewApplication(candidateID, vacancyID int, now time.Time) Application {
	return Application{
		CandidateID: candidateID,
		VacancyID:   vacancyID,
		Status:      UnderReview,
		AppDate:     now.Format(DateLayout),
	}
}

// ApplicationView is an application joined with its candidate and vacancy.
type ApplicationView struct {
	ID            int
	CandidateName string
	Position      string
	Company       string
	Status        ApplicationStatus
	AppDate       string
}

package events

import "github.com/maxaizer/staff-agency/internal/domain/models"

var CandidateAddedTopic = "CandidateAddedEvent"

type CandidateAdded struct {
	Candidate models.Candidate
}

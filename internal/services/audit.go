package services

import (
	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/staff-agency/internal/domain/events"
	"github.com/maxaizer/staff-agency/internal/metrics"
	log "github.com/sirupsen/logrus"
)

// Audit records every write made through the console in the log and the change counters.
type Audit struct{}

func NewAudit(bus EventBus.Bus) (*Audit, error) {
	a := &Audit{}

	subscriptions := map[string]any{
		events.CandidateAddedTopic:           a.onCandidateAdded,
		events.VacancyAddedTopic:             a.onVacancyAdded,
		events.ApplicationCreatedTopic:       a.onApplicationCreated,
		events.ApplicationStatusChangedTopic: a.onApplicationStatusChanged,
	}
	for topic, handler := range subscriptions {
		if err := bus.Subscribe(topic, handler); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func (a *Audit) onCandidateAdded(event events.CandidateAdded) {
	metrics.DomainChangesCounter.WithLabelValues("candidate_added").Inc()
	log.WithField("candidate_id", event.Candidate.ID).Infof("candidate %q registered", event.Candidate.FullName)
}

func (a *Audit) onVacancyAdded(event events.VacancyAdded) {
	metrics.DomainChangesCounter.WithLabelValues("vacancy_added").Inc()
	log.WithField("vacancy_id", event.Vacancy.ID).Infof("vacancy %q at %q published",
		event.Vacancy.Position, event.Vacancy.Company)
}

func (a *Audit) onApplicationCreated(event events.ApplicationCreated) {
	metrics.DomainChangesCounter.WithLabelValues("application_created").Inc()
	log.WithFields(log.Fields{
		"application_id": event.Application.ID,
		"candidate_id":   event.Application.CandidateID,
		"vacancy_id":     event.Application.VacancyID,
	}).Info("application created")
}

func (a *Audit) onApplicationStatusChanged(event events.ApplicationStatusChanged) {
	if event.RowsAffected == 0 {
		log.WithField("application_id", event.ApplicationID).Warn("status update matched no application")
		return
	}
	metrics.DomainChangesCounter.WithLabelValues("application_status_changed").Inc()
	log.WithField("application_id", event.ApplicationID).Infof("status changed to %q", event.Status)
}

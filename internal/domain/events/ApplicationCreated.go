package events

import "github.com/maxaizer/staff-agency/internal/domain/models"

var ApplicationCreatedTopic = "ApplicationCreatedEvent"

type ApplicationCreated struct {
	Application models.Application
}

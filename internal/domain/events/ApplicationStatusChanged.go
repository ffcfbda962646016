package events

import "github.com/maxaizer/staff-agency/internal/domain/models"

var ApplicationStatusChangedTopic = "ApplicationStatusChangedEvent"

// ApplicationStatusChanged is published after an update, including one that matched no row.
type ApplicationStatusChanged struct {
	ApplicationID int
	Status        models.ApplicationStatus
	RowsAffected  int64
}

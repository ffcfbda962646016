package events

import "github.com/maxaizer/staff-agency/internal/domain/models"

var VacancyAddedTopic = "VacancyAddedEvent"

type VacancyAdded struct {
	Vacancy models.Vacancy
}

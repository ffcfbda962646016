package repositories

import (
	"context"
	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/staff-agency/internal/domain/events"
	"github.com/maxaizer/staff-agency/internal/domain/models"
	gocache "github.com/patrickmn/go-cache"
)

const (
	candidateBriefsKey = "candidate_briefs"
	vacancyBriefsKey   = "vacancy_briefs"
)

type briefsRepository interface {
	Briefs(ctx context.Context) ([]models.Brief, error)
}

// CachedDirectory keeps the candidate and vacancy pick lists in memory until something is added.
type CachedDirectory struct {
	candidates briefsRepository
	vacancies  briefsRepository
	cache      *gocache.Cache
}

func NewCachedDirectory(candidates, vacancies briefsRepository, bus EventBus.Bus) (*CachedDirectory, error) {
	d := &CachedDirectory{
		candidates: candidates,
		vacancies:  vacancies,
		cache:      gocache.New(gocache.NoExpiration, 0),
	}

	if err := bus.Subscribe(events.CandidateAddedTopic, d.onCandidateAdded); err != nil {
		return nil, err
	}
	if err := bus.Subscribe(events.VacancyAddedTopic, d.onVacancyAdded); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *CachedDirectory) CandidateBriefs(ctx context.Context) ([]models.Brief, error) {
	return d.get(ctx, candidateBriefsKey, d.candidates)
}

func (d *CachedDirectory) VacancyBriefs(ctx context.Context) ([]models.Brief, error) {
	return d.get(ctx, vacancyBriefsKey, d.vacancies)
}

func (d *CachedDirectory) get(ctx context.Context, key string, repo briefsRepository) ([]models.Brief, error) {
	if value, found := d.cache.Get(key); found {
		return value.([]models.Brief), nil
	}

	briefs, err := repo.Briefs(ctx)
	if err != nil {
		return nil, err
	}
	d.cache.Set(key, briefs, gocache.NoExpiration)
	return briefs, nil
}

func (d *CachedDirectory) onCandidateAdded(_ events.CandidateAdded) {
	d.cache.Delete(candidateBriefsKey)
}

func (d *CachedDirectory) onVacancyAdded(_ events.VacancyAdded) {
	d.cache.Delete(vacancyBriefsKey)
}

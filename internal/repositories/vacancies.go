package repositories

import (
	"context"
	"github.com/maxaizer/staff-agency/internal/domain/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"iter"
	"time"
)

type Vacancies struct {
	db  *gorm.DB
	now func() time.Time
}

func NewVacanciesRepository(db *gorm.DB) *Vacancies {
	return &Vacancies{db: db, now: time.Now}
}

func (repo *Vacancies) Add(ctx context.Context, position, company, salary, requirements, description string) (models.Vacancy, error) {
	vacancy := models.NewVacancy(position, company, salary, requirements, description, repo.now())
	if err := repo.db.WithContext(ctx).Create(&vacancy).Error; err != nil {
		return models.Vacancy{}, errors.Wrap(err, "insert vacancy")
	}
	return vacancy, nil
}

func (repo *Vacancies) All(ctx context.Context) iter.Seq2[models.Vacancy, error] {
	return scanAll[models.Vacancy](repo.db.WithContext(ctx), func(tx *gorm.DB) *gorm.DB {
		return tx.Model(&models.Vacancy{}).Order("id")
	})
}

// Briefs labels each vacancy as "position (company)".
func (repo *Vacancies) Briefs(ctx context.Context) ([]models.Brief, error) {
	var briefs []models.Brief
	err := repo.db.WithContext(ctx).Model(&models.Vacancy{}).
		Select("id, position || ' (' || IFNULL(company, '') || ')' AS label").
		Order("id").
		Scan(&briefs).Error
	if err != nil {
		return nil, errors.Wrap(err, "select vacancies")
	}
	return briefs, nil
}

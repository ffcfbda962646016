package repositories

import (
	"context"
	"github.com/maxaizer/staff-agency/internal/domain/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"iter"
	"time"
)

type Applications struct {
	db  *gorm.DB
	now func() time.Time
}

func NewApplicationsRepository(db *gorm.DB) *Applications {
	return &Applications{db: db, now: time.Now}
}

// Add links a candidate to a vacancy. The referenced rows are not required to exist.
func (repo *Applications) Add(ctx context.Context, candidateID, vacancyID int) (models.Application, error) {
	application := models.NewApplication(candidateID, vacancyID, repo.now())
	if err := repo.db.WithContext(ctx).Create(&application).Error; err != nil {
		return models.Application{}, errors.Wrap(err, "insert application")
	}
	return application, nil
}

// UpdateStatus returns the number of affected rows; zero means no application has that ID.
func (repo *Applications) UpdateStatus(ctx context.Context, id int, status models.ApplicationStatus) (int64, error) {
	res := repo.db.WithContext(ctx).Model(&models.Application{}).
		Where("id = ?", id).
		Update("status", string(status))
	if res.Error != nil {
		return 0, errors.Wrap(res.Error, "update application status")
	}
	return res.RowsAffected, nil
}

func (repo *Applications) GetByID(ctx context.Context, id int) (*models.Application, error) {
	var application models.Application
	if err := repo.db.WithContext(ctx).First(&application, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "select application")
	}
	return &application, nil
}

func (repo *Applications) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&models.Application{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "count applications")
	}
	return count, nil
}

// Views yields applications whose candidate and vacancy both exist.
func (repo *Applications) Views(ctx context.Context) iter.Seq2[models.ApplicationView, error] {
	return scanAll[models.ApplicationView](repo.db.WithContext(ctx), func(tx *gorm.DB) *gorm.DB {
		return tx.Table("applications AS a").
			Select("a.id, c.full_name AS candidate_name, v.position, v.company, a.status, a.app_date").
			Joins("JOIN candidates c ON a.candidate_id = c.id").
			Joins("JOIN vacancies v ON a.vacancy_id = v.id").
			Order("a.id")
	})
}

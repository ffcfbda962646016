package repositories

import (
	"context"
	"github.com/maxaizer/staff-agency/internal/domain/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"iter"
	"time"
)

type Candidates struct {
	db  *gorm.DB
	now func() time.Time
}

func NewCandidatesRepository(db *gorm.DB) *Candidates {
	return &Candidates{db: db, now: time.Now}
}

// Add stores the candidate with today's registration date and returns it with the assigned ID.
func (repo *Candidates) Add(ctx context.Context, fullName, birthDate, skills, experience, phone, email string) (models.Candidate, error) {
	candidate := models.NewCandidate(fullName, birthDate, skills, experience, phone, email, repo.now())
	if err := repo.db.WithContext(ctx).Create(&candidate).Error; err != nil {
		return models.Candidate{}, errors.Wrap(err, "insert candidate")
	}
	return candidate, nil
}

// All yields every candidate in ID order. Each range over the sequence runs a fresh query.
func (repo *Candidates) All(ctx context.Context) iter.Seq2[models.Candidate, error] {
	return scanAll[models.Candidate](repo.db.WithContext(ctx), func(tx *gorm.DB) *gorm.DB {
		return tx.Model(&models.Candidate{}).Order("id")
	})
}

func (repo *Candidates) Briefs(ctx context.Context) ([]models.Brief, error) {
	var briefs []models.Brief
	err := repo.db.WithContext(ctx).Model(&models.Candidate{}).
		Select("id, full_name AS label").
		Order("id").
		Scan(&briefs).Error
	if err != nil {
		return nil, errors.Wrap(err, "select candidates")
	}
	return briefs, nil
}

package main

import (
	"context"
	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/staff-agency/internal/config"
	"github.com/maxaizer/staff-agency/internal/console"
	"github.com/maxaizer/staff-agency/internal/logger"
	"github.com/maxaizer/staff-agency/internal/metrics"
	"github.com/maxaizer/staff-agency/internal/repositories"
	"github.com/maxaizer/staff-agency/internal/services"
	log "github.com/sirupsen/logrus"
	"os"
)

func runConsole(dbContext *repositories.DbContext) error {

	bus := EventBus.New()

	if _, err := services.NewAudit(bus); err != nil {
		return err
	}

	candidates := repositories.NewCandidatesRepository(dbContext.DB)
	vacancies := repositories.NewVacanciesRepository(dbContext.DB)
	applications := repositories.NewApplicationsRepository(dbContext.DB)

	directory, err := repositories.NewCachedDirectory(candidates, vacancies, bus)
	if err != nil {
		return err
	}

	agency, err := console.NewConsole(os.Stdin, os.Stdout, bus, console.Repositories{
		Candidate:   candidates,
		Vacancy:     vacancies,
		Application: applications,
		Directory:   directory,
	})
	if err != nil {
		return err
	}

	return agency.Run(context.Background())
}

func main() {

	cfg := config.Get()

	logger.Setup(cfg.Logger)
	defer logger.Cleanup()

	metrics.Register()
	defer func() {
		if err := metrics.WriteToTextfile(cfg.Metrics.Textfile); err != nil {
			log.Errorf("can't write metrics: %v", err)
		}
	}()

	dbContext, err := repositories.NewDbContext(cfg.DB.ConnectionString)
	if err != nil {
		log.Fatalf("can't create db context: %v", err)
	}

	if err = dbContext.Migrate(); err != nil {
		_ = dbContext.Close()
		log.Fatalf("can't migrate db context: %v", err)
	}

	log.Info("Console started")
	err = runConsole(dbContext)

	if closeErr := dbContext.Close(); closeErr != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("can't close db: %v", closeErr)
	}

	if err != nil {
		log.Errorf("console stopped: %v", err)
	}
	log.Info("Console stopped")
}

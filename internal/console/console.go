package console

import (
	"context"
	"errors"
	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/staff-agency/internal/domain/models"
	"github.com/maxaizer/staff-agency/internal/logger"
	"github.com/maxaizer/staff-agency/internal/metrics"
	log "github.com/sirupsen/logrus"
	"io"
	"iter"
	"time"
)

type Repositories struct {
	Candidate   candidateRepository
	Vacancy     vacancyRepository
	Application applicationRepository
	Directory   directory
}

type candidateRepository interface {
	Add(ctx context.Context, fullName, birthDate, skills, experience, phone, email string) (models.Candidate, error)
	All(ctx context.Context) iter.Seq2[models.Candidate, error]
}

type vacancyRepository interface {
	Add(ctx context.Context, position, company, salary, requirements, description string) (models.Vacancy, error)
	All(ctx context.Context) iter.Seq2[models.Vacancy, error]
}

type applicationRepository interface {
	Add(ctx context.Context, candidateID, vacancyID int) (models.Application, error)
	UpdateStatus(ctx context.Context, id int, status models.ApplicationStatus) (int64, error)
	Views(ctx context.Context) iter.Seq2[models.ApplicationView, error]
}

type directory interface {
	CandidateBriefs(ctx context.Context) ([]models.Brief, error)
	VacancyBriefs(ctx context.Context) ([]models.Brief, error)
}

type Console struct {
	terminal     terminal
	bus          EventBus.Bus
	repositories Repositories
}

const exitChoice = "0"

type menuItem struct {
	choice    string
	title     string
	operation string
}

var menu = []menuItem{
	{"1", "Add candidate", "add_candidate"},
	{"2", "Add vacancy", "add_vacancy"},
	{"3", "Create application", "create_application"},
	{"4", "Show candidates", "show_candidates"},
	{"5", "Show vacancies", "show_vacancies"},
	{"6", "Show applications", "show_applications"},
	{"7", "Change application status", "update_application_status"},
}

func NewConsole(in io.Reader, out io.Writer, bus EventBus.Bus, repositories Repositories) (*Console, error) {

	if bus == nil {
		return nil, errors.New("bus is nil")
	}

	if repositories.Candidate == nil {
		return nil, errors.New("candidate repository is nil")
	}

	if repositories.Vacancy == nil {
		return nil, errors.New("vacancy repository is nil")
	}

	if repositories.Application == nil {
		return nil, errors.New("application repository is nil")
	}

	if repositories.Directory == nil {
		return nil, errors.New("directory is nil")
	}

	return &Console{terminal: newLineTerminal(in, out), bus: bus, repositories: repositories}, nil
}

// Run serves the menu until the operator exits or the input ends.
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.printMenu()
		choice, err := c.terminal.ReadLine("Choose an action: ")
		if err != nil {
			return c.exit(err)
		}

		if choice == exitChoice {
			return c.exit(nil)
		}

		item, cmd := c.createCommand(choice)
		if cmd == nil {
			c.terminal.Println("Invalid input, try again")
			continue
		}

		if err = c.runCommand(ctx, item, cmd); errors.Is(err, errInputClosed) {
			return c.exit(err)
		}
	}
}

func (c *Console) printMenu() {
	c.terminal.Println()
	c.terminal.Println("=== Staffing Agency ===")
	for _, item := range menu {
		c.terminal.Printf("%s. %s\n", item.choice, item.title)
	}
	c.terminal.Printf("%s. Exit\n", exitChoice)
}

// exit ends the session. Input that can no longer be read is logged but never fails the run.
func (c *Console) exit(err error) error {
	if err != nil && !errors.Is(err, errInputClosed) {
		return err
	}
	if err != nil && err != errInputClosed {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeInput).Warnf("input stopped: %v", err)
	}
	c.terminal.Println("Exiting...")
	return nil
}

func (c *Console) createCommand(choice string) (menuItem, command) {

	for _, item := range menu {
		if item.choice != choice {
			continue
		}

		switch item.operation {
		case "add_candidate":
			return item, newAddCandidateCommand(c.terminal, c.bus, c.repositories.Candidate)
		case "add_vacancy":
			return item, newAddVacancyCommand(c.terminal, c.bus, c.repositories.Vacancy)
		case "create_application":
			return item, newCreateApplicationCommand(c.terminal, c.bus, c.repositories.Directory, c.repositories.Application)
		case "show_candidates":
			return item, newShowCandidatesCommand(c.terminal, c.repositories.Candidate)
		case "show_vacancies":
			return item, newShowVacanciesCommand(c.terminal, c.repositories.Vacancy)
		case "show_applications":
			return item, newShowApplicationsCommand(c.terminal, c.repositories.Application)
		case "update_application_status":
			return item, newUpdateStatusCommand(c.terminal, c.bus, c.repositories.Application)
		}
	}
	return menuItem{}, nil
}

func (c *Console) runCommand(ctx context.Context, item menuItem, cmd command) error {

	start := time.Now()
	err := cmd.Run(ctx)
	metrics.OperationDuration.WithLabelValues(item.operation).Observe(time.Since(start).Seconds())

	result := "ok"
	switch {
	case err == nil:
	case errors.Is(err, errInputClosed):
		result = "aborted"
	case isInputError(err):
		result = "rejected"
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeInput).Warnf("%s: %v", item.operation, err)
	default:
		result = "failed"
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("%s: %v", item.operation, err)
	}
	metrics.OperationsCounter.WithLabelValues(item.operation, result).Inc()

	return err
}

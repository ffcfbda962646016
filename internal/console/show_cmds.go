package console

import (
	"context"
	"github.com/maxaizer/staff-agency/internal/domain/models"
	"iter"
)

type showCandidatesCommand struct {
	terminal   terminal
	candidates candidateRepository
}

func newShowCandidatesCommand(terminal terminal, candidates candidateRepository) *showCandidatesCommand {
	return &showCandidatesCommand{terminal: terminal, candidates: candidates}
}

func (c *showCandidatesCommand) Run(ctx context.Context) error {
	c.terminal.Println()
	c.terminal.Println("Candidates:")
	return printAll(c.terminal, c.candidates.All(ctx), "No candidates", func(t terminal, candidate models.Candidate) {
		t.Printf("\nID: %d\n", candidate.ID)
		t.Printf("Full name: %s\n", candidate.FullName)
		t.Printf("Birth date: %s\n", candidate.BirthDate)
		t.Printf("Skills: %s\n", candidate.Skills)
		t.Printf("Experience: %s years\n", candidate.Experience)
		t.Printf("Contacts: %s, %s\n", candidate.Phone, candidate.Email)
		t.Printf("Registered: %s\n", candidate.RegDate)
	})
}

type showVacanciesCommand struct {
	terminal  terminal
	vacancies vacancyRepository
}

func newShowVacanciesCommand(terminal terminal, vacancies vacancyRepository) *showVacanciesCommand {
	return &showVacanciesCommand{terminal: terminal, vacancies: vacancies}
}

func (c *showVacanciesCommand) Run(ctx context.Context) error {
	c.terminal.Println()
	c.terminal.Println("Vacancies:")
	return printAll(c.terminal, c.vacancies.All(ctx), "No vacancies", func(t terminal, vacancy models.Vacancy) {
		t.Printf("\nID: %d\n", vacancy.ID)
		t.Printf("Position: %s\n", vacancy.Position)
		t.Printf("Company: %s\n", vacancy.Company)
		t.Printf("Salary: %s\n", vacancy.Salary)
		t.Printf("Requirements: %s\n", vacancy.Requirements)
		t.Printf("Description: %s\n", vacancy.Description)
		t.Printf("Published: %s\n", vacancy.PubDate)
	})
}

type showApplicationsCommand struct {
	terminal     terminal
	applications applicationRepository
}

func newShowApplicationsCommand(terminal terminal, applications applicationRepository) *showApplicationsCommand {
	return &showApplicationsCommand{terminal: terminal, applications: applications}
}

func (c *showApplicationsCommand) Run(ctx context.Context) error {
	c.terminal.Println()
	c.terminal.Println("Applications:")
	return printAll(c.terminal, c.applications.Views(ctx), "No applications", printApplication)
}

func printApplication(t terminal, application models.ApplicationView) {
	t.Printf("\nID: %d\n", application.ID)
	t.Printf("Candidate: %s\n", application.CandidateName)
	t.Printf("Vacancy: %s (%s)\n", application.Position, application.Company)
	t.Printf("Status: %s\n", application.Status)
	t.Printf("Applied: %s\n", application.AppDate)
}

// printAll renders every item, or the empty message when there is none.
func printAll[T any](t terminal, items iter.Seq2[T, error], emptyMessage string, render func(terminal, T)) error {
	printed := 0
	for item, err := range items {
		if err != nil {
			t.Printf("Error: %v\n", err)
			return err
		}
		render(t, item)
		printed++
	}

	if printed == 0 {
		t.Println(emptyMessage)
	}
	return nil
}

package console

import (
	"context"
	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/staff-agency/internal/domain/events"
	"github.com/maxaizer/staff-agency/internal/domain/models"
)

const numericIDsRequired = "Error: enter numeric IDs"

type createApplicationCommand struct {
	terminal     terminal
	bus          EventBus.Bus
	directory    directory
	applications applicationRepository
	candidateID  *textInput
	vacancyID    *textInput
}

func newCreateApplicationCommand(terminal terminal, bus EventBus.Bus, directory directory,
	applications applicationRepository) *createApplicationCommand {

	return &createApplicationCommand{
		terminal:     terminal,
		bus:          bus,
		directory:    directory,
		applications: applications,
		candidateID:  newIDInput("\nCandidate ID: ", numericIDsRequired),
		vacancyID:    newIDInput("Vacancy ID: ", numericIDsRequired),
	}
}

func (c *createApplicationCommand) Run(ctx context.Context) error {

	c.terminal.Println()
	c.terminal.Println("Creating a new application")

	if err := c.printBriefs(ctx, "Candidates:", c.directory.CandidateBriefs); err != nil {
		return err
	}
	if err := c.printBriefs(ctx, "Vacancies:", c.directory.VacancyBriefs); err != nil {
		return err
	}

	fields, err := readFields(c.terminal, c.candidateID, c.vacancyID)
	if err != nil {
		return err
	}
	candidateID, _ := parseID(fields[0])
	vacancyID, _ := parseID(fields[1])

	application, err := c.applications.Add(ctx, candidateID, vacancyID)
	if err != nil {
		c.terminal.Printf("Error: %v\n", err)
		return err
	}

	c.bus.Publish(events.ApplicationCreatedTopic, events.ApplicationCreated{Application: application})
	c.terminal.Println("Application created successfully!")
	return nil
}

func (c *createApplicationCommand) printBriefs(ctx context.Context, title string,
	load func(ctx context.Context) ([]models.Brief, error)) error {

	briefs, err := load(ctx)
	if err != nil {
		c.terminal.Printf("Error: %v\n", err)
		return err
	}

	c.terminal.Println()
	c.terminal.Println(title)
	for _, brief := range briefs {
		c.terminal.Printf("%d: %s\n", brief.ID, brief.Label)
	}
	return nil
}

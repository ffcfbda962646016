package console

import (
	"context"
	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/staff-agency/internal/domain/events"
)

type addVacancyCommand struct {
	terminal  terminal
	bus       EventBus.Bus
	vacancies vacancyRepository
	inputs    []*textInput
}

func newAddVacancyCommand(terminal terminal, bus EventBus.Bus, vacancies vacancyRepository) *addVacancyCommand {
	return &addVacancyCommand{
		terminal:  terminal,
		bus:       bus,
		vacancies: vacancies,
		inputs: []*textInput{
			newTextInput("Position: "),
			newTextInput("Company: "),
			newTextInput("Salary: "),
			newTextInput("Requirements: "),
			newTextInput("Description: "),
		},
	}
}

func (c *addVacancyCommand) Run(ctx context.Context) error {

	c.terminal.Println()
	c.terminal.Println("Adding a new vacancy")

	fields, err := readFields(c.terminal, c.inputs...)
	if err != nil {
		return err
	}

	vacancy, err := c.vacancies.Add(ctx, fields[0], fields[1], fields[2], fields[3], fields[4])
	if err != nil {
		c.terminal.Printf("Error: %v\n", err)
		return err
	}

	c.bus.Publish(events.VacancyAddedTopic, events.VacancyAdded{Vacancy: vacancy})
	c.terminal.Println("Vacancy added successfully!")
	return nil
}

package console

import (
	"context"
	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/staff-agency/internal/domain/events"
)

type addCandidateCommand struct {
	terminal   terminal
	bus        EventBus.Bus
	candidates candidateRepository
	inputs     []*textInput
}

func newAddCandidateCommand(terminal terminal, bus EventBus.Bus, candidates candidateRepository) *addCandidateCommand {
	return &addCandidateCommand{
		terminal:   terminal,
		bus:        bus,
		candidates: candidates,
		inputs: []*textInput{
			newTextInput("Full name: "),
			newTextInput("Birth date (YYYY-MM-DD): "),
			newTextInput("Skills (comma-separated): "),
			newTextInput("Experience (years): "),
			newTextInput("Phone: "),
			newTextInput("Email: "),
		},
	}
}

func (c *addCandidateCommand) Run(ctx context.Context) error {

	c.terminal.Println()
	c.terminal.Println("Adding a new candidate")

	fields, err := readFields(c.terminal, c.inputs...)
	if err != nil {
		return err
	}

	candidate, err := c.candidates.Add(ctx, fields[0], fields[1], fields[2], fields[3], fields[4], fields[5])
	if err != nil {
		c.terminal.Printf("Error: %v\n", err)
		return err
	}

	c.bus.Publish(events.CandidateAddedTopic, events.CandidateAdded{Candidate: candidate})
	c.terminal.Println("Candidate added successfully!")
	return nil
}

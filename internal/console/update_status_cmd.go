package console

import (
	"context"
	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/staff-agency/internal/domain/events"
	"github.com/maxaizer/staff-agency/internal/domain/models"
)

type updateStatusCommand struct {
	terminal     terminal
	bus          EventBus.Bus
	applications applicationRepository
	list         *showApplicationsCommand
	id           *textInput
	status       *textInput
}

func newUpdateStatusCommand(terminal terminal, bus EventBus.Bus, applications applicationRepository) *updateStatusCommand {
	return &updateStatusCommand{
		terminal:     terminal,
		bus:          bus,
		applications: applications,
		list:         newShowApplicationsCommand(terminal, applications),
		id:           newIDInput("\nEnter the application ID to change its status: ", "Error: enter a numeric ID"),
		status:       newTextInput("New status (" + models.StatusPrompt() + "): "),
	}
}

func (c *updateStatusCommand) Run(ctx context.Context) error {

	if err := c.list.Run(ctx); err != nil {
		return err
	}

	fields, err := readFields(c.terminal, c.id, c.status)
	if err != nil {
		return err
	}
	id, _ := parseID(fields[0])
	status := models.ApplicationStatus(fields[1])

	rowsAffected, err := c.applications.UpdateStatus(ctx, id, status)
	if err != nil {
		c.terminal.Printf("Error: %v\n", err)
		return err
	}

	c.bus.Publish(events.ApplicationStatusChangedTopic, events.ApplicationStatusChanged{
		ApplicationID: id,
		Status:        status,
		RowsAffected:  rowsAffected,
	})
	c.terminal.Println("Application status updated!")
	return nil
}

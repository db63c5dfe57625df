// Package server contains HTTP and WebSocket handlers for the application's API endpoints.
package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetReminders handles GET /api/reminders
// @Summary List due care reminders
// @Description Sweep the authenticated user's plants and return their unacknowledged reminders.
// @Tags reminders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.CareReminder
// @Router /reminders [get]
func (s *Server) GetReminders(c *fiber.Ctx) error {
	actor, err := s.actor(c)
	if err != nil {
		return nil
	}

	reminders, err := s.reminderService.ListReminders(c.UserContext(), actor)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(reminders)
}

// AcknowledgeReminder handles POST /api/reminders/:id/ack
// @Summary Acknowledge a reminder
// @Description Mark a reminder as done so it stops appearing in the list.
// @Tags reminders
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reminder ID"
// @Success 200 {object} models.CareReminder
// @Failure 404 {object} models.ErrorResponse
// @Router /reminders/{id}/ack [post]
func (s *Server) AcknowledgeReminder(c *fiber.Ctx) error {
	reminderID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	actor, err := s.actor(c)
	if err != nil {
		return nil
	}

	reminder, err := s.reminderService.AcknowledgeReminder(c.UserContext(), actor, reminderID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(reminder)
}

// RunReminderSweep handles POST /api/tasks/reminders/run
// @Summary Run the reminder sweep
// @Description Scan every plant and insert reminders for care tasks that came due. The background sweeper runs the same scan hourly; this endpoint triggers it on demand.
// @Tags reminders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{created=int}
// @Failure 403 {object} models.ErrorResponse
// @Router /tasks/reminders/run [post]
func (s *Server) RunReminderSweep(c *fiber.Ctx) error {
	created, err := s.reminderService.Sweep(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}

	if created > 0 {
		s.publishBroadcastEvent(EventReminderDue, map[string]interface{}{
			"created": created,
		})
	}

	return c.JSON(fiber.Map{"created": created})
}

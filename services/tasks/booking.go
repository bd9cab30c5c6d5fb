package tasks

import (
	"encoding/json"
	"time"

	"clubbook/models"

	"github.com/hibiken/asynq"
)

const (
	TypeBookingConfirmed = "booking:confirmed"
	TypeBookingReminder  = "booking:reminder"
)

// PayloadFor builds the task payload describing b.
func PayloadFor(b models.Booking, kind string) models.BookingNotificationPayload {
	return models.BookingNotificationPayload{
		BookingID:   b.ID,
		ResourceID:  b.ResourceID,
		BookedBy:    b.BookedBy,
		Date:        b.Date,
		StartTime:   b.StartTime.String(),
		ServiceName: b.ServiceName,
		Kind:        kind,
	}
}

// NewBookingConfirmedTask is processed as soon as a worker picks it up.
func NewBookingConfirmedTask(b models.Booking) (*asynq.Task, []asynq.Option, error) {
	payload, err := json.Marshal(PayloadFor(b, "confirmed"))
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingConfirmed, payload)
	opts := []asynq.Option{asynq.MaxRetry(5)}

	return task, opts, nil
}

// NewBookingReminderTask fires at fireAt. The task id is tied to the booking so
// a booking never gets two reminders.
func NewBookingReminderTask(b models.Booking, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	payload, err := json.Marshal(PayloadFor(b, "reminder"))
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingReminder, payload)
	opts := []asynq.Option{asynq.ProcessAt(fireAt), asynq.TaskID("reminder:" + b.ID)}

	return task, opts, nil
}

// DecodePayload reads a booking payload back from a task.
func DecodePayload(task *asynq.Task) (models.BookingNotificationPayload, error) {
	var p models.BookingNotificationPayload
	err := json.Unmarshal(task.Payload(), &p)
	return p, err
}

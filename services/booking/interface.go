package booking

import (
	"context"
	"time"

	"clubbook/config"
	bookingRepo "clubbook/database/repository/booking"
	"clubbook/models"
	"clubbook/services/availability"
	"clubbook/utils"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// BookingService books, cancels and lists bookable windows.
type BookingService interface {
	CreateBooking(ctx context.Context, resourceID, bookedBy string, req models.CreateBookingRequest) (*models.Booking, error)
	CancelBooking(ctx context.Context, bookingID, actorID string) (*models.Booking, error)
	ListResourceBookings(ctx context.Context, resourceID, fromDate, toDate string) ([]models.Booking, error)
	ListMyBookings(ctx context.Context, bookedBy string) ([]models.Booking, error)
}

// SnapshotSource supplies the availability state a booking is checked against.
type SnapshotSource interface {
	Snapshot(ctx context.Context, resourceID, fromDate, toDate string) (availability.Snapshot, error)
}

// Enqueuer is the part of *asynq.Client the booking flow uses.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// DefaultBookingService implements BookingService. Locker and Queue are optional.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Schedule SnapshotSource
	Locker   SlotLocker
	Queue    Enqueuer

	Logger       *zap.Logger
	Location     *time.Location
	LockTTL      time.Duration
	ReminderLead time.Duration
	Now          func() time.Time
	NewID        func() string
}

// NewDefaultBookingService wires the service with settings from config.AppConfig.
func NewDefaultBookingService(repo bookingRepo.BookingRepository, schedule SnapshotSource, locker SlotLocker, queue Enqueuer) *DefaultBookingService {
	return &DefaultBookingService{
		Repo:         repo,
		Schedule:     schedule,
		Locker:       locker,
		Queue:        queue,
		Logger:       utils.GetLogger(),
		Location:     config.Location(),
		LockTTL:      config.BookingLockTTL(),
		ReminderLead: config.ReminderLead(),
		Now:          time.Now,
		NewID:        func() string { return uuid.New().String() },
	}
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// localNow is the current time in the club's timezone.
func (s *DefaultBookingService) localNow() time.Time {
	if s.Location == nil {
		return s.now()
	}
	return s.now().In(s.Location)
}

func (s *DefaultBookingService) newID() string {
	if s.NewID == nil {
		return uuid.New().String()
	}
	return s.NewID()
}

func (s *DefaultBookingService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

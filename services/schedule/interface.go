package schedule

import (
	"context"
	"time"

	"clubbook/config"
	blackoutRepo "clubbook/database/repository/blackout"
	bookingRepo "clubbook/database/repository/booking"
	serviceRepo "clubbook/database/repository/service"
	slotRepo "clubbook/database/repository/slot"
	"clubbook/models"
	"clubbook/services/availability"
	"clubbook/services/planner"
	"clubbook/utils"

	"go.uber.org/zap"
)

// ScheduleService owns a resource's declared slots, blackouts and service
// catalogue, and computes the windows they offer.
type ScheduleService interface {
	Snapshot(ctx context.Context, resourceID, fromDate, toDate string) (availability.Snapshot, error)
	WindowsForDate(ctx context.Context, resourceID, date string) (availability.Result, error)
	WindowsForRange(ctx context.Context, resourceID, fromDate, toDate string) ([]availability.Result, error)

	ListSlots(ctx context.Context, resourceID string) ([]models.SlotView, error)
	ApplyCommand(ctx context.Context, resourceID string, cmd planner.Command) (planner.Plan, error)

	ListBlackouts(ctx context.Context, resourceID string) ([]models.BlackoutDate, error)
	AddBlackout(ctx context.Context, resourceID, date, reason string) (*models.BlackoutDate, error)
	RemoveBlackout(ctx context.Context, resourceID, date string) error

	ListServices(ctx context.Context, resourceID string) ([]models.Service, error)
	UpsertService(ctx context.Context, resourceID string, svc models.Service) (*models.Service, error)
	DeleteService(ctx context.Context, resourceID, name string) error

	MigrateLegacy(ctx context.Context) (int, error)
	CalendarICS(ctx context.Context, resourceID string) (string, error)
}

// DefaultScheduleService implements ScheduleService over the four repositories.
type DefaultScheduleService struct {
	Slots     slotRepo.SlotRepository
	Blackouts blackoutRepo.BlackoutRepository
	Services  serviceRepo.ServiceRepository
	Bookings  bookingRepo.BookingRepository

	Logger       *zap.Logger
	Location     *time.Location
	HidePast     bool
	MaxRangeDays int
	PreviewCount int
	Now          func() time.Time
	NewPlanner   func(resourceID string) *planner.Planner
}

// NewDefaultScheduleService wires the service with settings from config.AppConfig.
func NewDefaultScheduleService(
	slots slotRepo.SlotRepository,
	blackouts blackoutRepo.BlackoutRepository,
	services serviceRepo.ServiceRepository,
	bookings bookingRepo.BookingRepository,
) *DefaultScheduleService {
	return &DefaultScheduleService{
		Slots:        slots,
		Blackouts:    blackouts,
		Services:     services,
		Bookings:     bookings,
		Logger:       utils.GetLogger(),
		Location:     config.Location(),
		HidePast:     config.AppConfig.HidePastWindows,
		MaxRangeDays: config.AppConfig.MaxRangeDays,
		PreviewCount: config.AppConfig.UpcomingPreviewCount,
		Now:          time.Now,
		NewPlanner:   planner.New,
	}
}

func (s *DefaultScheduleService) now() time.Time {
	if s.Now == nil {
		return time.Now().In(s.location())
	}
	return s.Now().In(s.location())
}

func (s *DefaultScheduleService) location() *time.Location {
	if s.Location == nil {
		return time.UTC
	}
	return s.Location
}

func (s *DefaultScheduleService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

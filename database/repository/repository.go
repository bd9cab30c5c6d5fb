package repository

import (
	blackoutRepo "clubbook/database/repository/blackout"
	bookingRepo "clubbook/database/repository/booking"
	serviceRepo "clubbook/database/repository/service"
	slotRepo "clubbook/database/repository/slot"
)

// Re-export the SlotRepository interface and constructor.
type SlotRepository = slotRepo.SlotRepository

var NewMongoSlotRepo = slotRepo.NewMongoSlotRepo

// Re-export the BlackoutRepository interface and constructor.
type BlackoutRepository = blackoutRepo.BlackoutRepository

var NewMongoBlackoutRepo = blackoutRepo.NewMongoBlackoutRepo

// Re-export the ServiceRepository interface and constructor.
type ServiceRepository = serviceRepo.ServiceRepository

var NewMongoServiceRepo = serviceRepo.NewMongoServiceRepo

// Re-export the BookingRepository interface and constructor.
type BookingRepository = bookingRepo.BookingRepository

var NewMongoBookingRepo = bookingRepo.NewMongoBookingRepo

package memory

import (
	blackoutRepo "clubbook/database/repository/blackout"
	bookingRepo "clubbook/database/repository/booking"
	serviceRepo "clubbook/database/repository/service"
	slotRepo "clubbook/database/repository/slot"
)

var (
	_ slotRepo.SlotRepository         = (*SlotRepo)(nil)
	_ blackoutRepo.BlackoutRepository = (*BlackoutRepo)(nil)
	_ serviceRepo.ServiceRepository   = (*ServiceRepo)(nil)
	_ bookingRepo.BookingRepository   = (*BookingRepo)(nil)
)

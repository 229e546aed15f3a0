package domain

// Ссылки на разделы интерфейса, которые прикладываются к уведомлениям
const (
	LinkCustomerBookings = "/customer/bookings"
	LinkProviderBookings = "/provider/bookings"
)

// Уведомление исполнителю о новой заявке
const (
	NewBookingTitle         = "New Booking Request"
	NewBookingMessageFormat = `You have a new booking request for "%s"`
)

// Business validation constants
const (
	MaxDescriptionLength = 1000
)

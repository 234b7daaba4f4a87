package domain

// Default schedule values
const (
	DefaultOpeningTime = "10:00 AM"
	DefaultClosingTime = "08:00 PM"
	DefaultTimezone    = "UTC"
)

// Working hours encoding
const (
	// ClosedLabel value stored for a closed day
	ClosedLabel = "Closed"

	// HoursSeparator separator between opening and closing time in a stored value
	HoursSeparator = " — "
)

// Store status messages
const (
	MessageOpenNow   = "Open now"
	MessageClosedNow = "Closed now"
)

// Business validation constants
const (
	MaxSalonNameLength   = 120
	MaxAddressLength     = 300
	MaxFavoriteServices  = 50
	MaxPhoneNumberLength = 32
)

// Time format constants
const (
	DateTimeFormat = "2006-01-02 15:04" // YYYY-MM-DD HH:MM, 24-hour clock
)

package domain

// PreferenceNamespace group of user preferences stored under one key
type PreferenceNamespace string

const (
	NamespaceNotification PreferenceNamespace = "notification"
	NamespacePrivacy      PreferenceNamespace = "privacy"
	NamespaceService      PreferenceNamespace = "service"
)

// IsValid returns true for known namespaces
func (n PreferenceNamespace) IsValid() bool {
	switch n {
	case NamespaceNotification, NamespacePrivacy, NamespaceService:
		return true
	}
	return false
}

// NotificationPreferences notification toggles of a user
type NotificationPreferences struct {
	PushEnabled      bool `json:"pushEnabled"`
	EmailEnabled     bool `json:"emailEnabled"`
	SMSEnabled       bool `json:"smsEnabled"`
	BookingReminders bool `json:"bookingReminders"`
	Promotions       bool `json:"promotions"`
}

// DefaultNotificationPreferences push, email and reminders on
func DefaultNotificationPreferences() NotificationPreferences {
	return NotificationPreferences{
		PushEnabled:      true,
		EmailEnabled:     true,
		BookingReminders: true,
	}
}

// PrivacyPreferences privacy toggles of a user
type PrivacyPreferences struct {
	ProfileVisible      bool `json:"profileVisible"`
	ShareBookingHistory bool `json:"shareBookingHistory"`
	AllowAnalytics      bool `json:"allowAnalytics"`
}

// DefaultPrivacyPreferences profile visible, everything else off
func DefaultPrivacyPreferences() PrivacyPreferences {
	return PrivacyPreferences{ProfileVisible: true}
}

// ServicePreferences favourite services and preferred employee of a customer
type ServicePreferences struct {
	FavoriteServiceIDs  []int64 `json:"favoriteServiceIds"`
	PreferredEmployeeID *int64  `json:"preferredEmployeeId,omitempty"`
}

// DefaultServicePreferences no favourites
func DefaultServicePreferences() ServicePreferences {
	return ServicePreferences{FavoriteServiceIDs: []int64{}}
}

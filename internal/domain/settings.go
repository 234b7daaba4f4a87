package domain

import (
	"time"
)

// Role user role in the salon app
type Role string

const (
	RoleCustomer Role = "customer"
	RoleEmployee Role = "employee"
	RoleOwner    Role = "owner"
)

// IsValid returns true for known roles
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleEmployee, RoleOwner:
		return true
	}
	return false
}

// GeneralSettings general settings of a salon, including its weekly schedule
type GeneralSettings struct {
	SalonID      int64
	OwnerID      int64
	Name         string
	Phone        string
	Address      string
	Timezone     string // IANA name, e.g. "Europe/Moscow"
	WorkingHours WeeklySchedule
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DefaultGeneralSettings settings created on first load of a salon
func DefaultGeneralSettings(salonID int64) *GeneralSettings {
	return &GeneralSettings{
		SalonID:      salonID,
		Timezone:     DefaultTimezone,
		WorkingHours: DefaultWeeklySchedule(),
	}
}

// Location resolves the salon timezone, falling back to UTC
func (s *GeneralSettings) Location() *time.Location {
	if s.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// IsOwner returns true if the user owns the salon
func (s *GeneralSettings) IsOwner(userID int64) bool {
	return s.OwnerID != 0 && s.OwnerID == userID
}

// LocationInfo partial update of the salon location. Nil fields are left unchanged.
// WorkingHours values are FormatHours-encoded strings keyed by weekday.
type LocationInfo struct {
	Address      *string
	Timezone     *string
	WorkingHours map[string]string
}

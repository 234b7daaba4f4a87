package get_preferences

// PreferencesResponse HTTP response model
type PreferencesResponse struct {
	UserID      int64       `json:"userId"`
	Namespace   string      `json:"namespace"`
	Preferences interface{} `json:"preferences"`
}

package domain

// StoreStatus whether a salon is open right now and when that changes
type StoreStatus struct {
	IsOpen   bool
	Message  string
	NextInfo *string // nil when the salon is closed all week
}

package domain

// InitiateEvent is the first-contact event (the /start command).
type InitiateEvent struct {
	UserID      int64
	ChatID      int64
	DisplayName string
}

// SelectEvent is a menu option pick. Data is the opaque callback identifier;
// CallbackID addresses the acknowledgment back to the originating client.
type SelectEvent struct {
	UserID     int64
	ChatID     int64
	MessageID  int
	CallbackID string
	Data       string
}

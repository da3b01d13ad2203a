package ports

import "context"

// Button is one labeled option in an inline keyboard.
type Button struct {
	Label string
	Data  string // opaque selection identifier sent back on pick
}

// Keyboard is rows of buttons attached to a rendered screen.
type Keyboard [][]Button

// Messenger is the outbound side of the messaging front end.
type Messenger interface {
	// SendScreen posts a new message with an attached keyboard.
	SendScreen(ctx context.Context, chatID int64, text string, kb Keyboard) error

	// EditScreen replaces an existing message in place, keeping the user
	// on a single evolving menu message.
	EditScreen(ctx context.Context, chatID int64, messageID int, text string, kb Keyboard) error

	// Popup answers a selection with an alert popup. Used for the static
	// fast path and for user-visible failures.
	Popup(ctx context.Context, callbackID, text string) error

	// Ack answers a selection with no visible content, clearing the
	// client's pending state.
	Ack(ctx context.Context, callbackID string) error
}

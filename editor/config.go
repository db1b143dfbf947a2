package editor

import "time"

const (
	// DefaultQuitTimes is how many extra quit presses a dirty document needs.
	DefaultQuitTimes = 3
	// DefaultMessageTTL is how long a status message stays visible.
	DefaultMessageTTL = 5 * time.Second

	helpMessage = "HELP: Ctrl-Q = quit | Ctrl-S = save | Ctrl-F = find"
)

// Config configures the editor Model.
type Config struct {
	Theme  Theme
	KeyMap KeyMap

	// QuitTimes is the number of extra quit presses required while the
	// document has unsaved changes. 0 quits immediately.
	QuitTimes int

	// MessageTTL is how long a status message stays visible.
	MessageTTL time.Duration

	// Version is shown in the welcome banner of an empty document.
	Version string

	// Status is the initial status message. Empty shows the key help.
	Status string
}

// DefaultConfig returns the configuration used when the host sets nothing.
func DefaultConfig() Config {
	return Config{
		Theme:      DefaultTheme(),
		KeyMap:     DefaultKeyMap(),
		QuitTimes:  DefaultQuitTimes,
		MessageTTL: DefaultMessageTTL,
	}
}

package game

//go:generate go tool stringer -type=State -trimprefix=State

// State is the driver lifecycle stage.
type State int

const (
	// StateInitializing is the stage before platform resources are acquired.
	StateInitializing State = iota
	// StateRunning repeats frames until a quit is observed.
	StateRunning
	// StateShuttingDown is terminal.
	StateShuttingDown
)

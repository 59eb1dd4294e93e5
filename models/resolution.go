package models

// LoadState tracks a record lookup through its lifecycle. Lookups start idle,
// move to loading once a ref has been classified, and settle on ready or error.
type LoadState string

const (
	LoadIdle    LoadState = "idle"
	LoadLoading LoadState = "loading"
	LoadReady   LoadState = "ready"
	LoadError   LoadState = "error"
)

// Record sources reported alongside resolved lookups.
const (
	SourceDraft  = "draft"
	SourceServer = "server"
)

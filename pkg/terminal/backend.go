package terminal

// Backend is a source of capability strings for one terminal kind.
type Backend interface {
	// Name identifies the backend in logs and reports
	Name() string

	// Lookup returns the raw, unparameterized capability string for a
	// terminfo short name such as "bold" or "cup".
	Lookup(capname string) ([]byte, bool)

	// Colors is the colour count the backend knows about
	Colors() int
}

// colorer is implemented by backends that build colour sequences
// directly instead of through setaf/setab templates
type colorer interface {
	Color(index int, background bool) string
}

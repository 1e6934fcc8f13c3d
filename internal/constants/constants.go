package constants

const (
	// DateFormat is the standard date key format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// DefaultConfigDir is the default directory (under $HOME) for config, logs and storage
	DefaultConfigDir = ".config/levos"

	// DefaultDBFile is the default SQLite database filename
	DefaultDBFile = "levos.db"

	// DefaultListenAddr is the default address for the HTTP API
	DefaultListenAddr = ":8080"
)

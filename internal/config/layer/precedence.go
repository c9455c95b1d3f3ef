package layer

// Source identifies where a layer's settings came from. Sources are
// declared lowest priority first.
type Source uint8

const (
	// SourceBuiltin is the compiled-in defaults.
	SourceBuiltin Source = iota
	// SourceUserGlobal is $XDG_CONFIG_HOME/quill/config.{toml,yaml,yml}.
	SourceUserGlobal
	// SourceFile is the file passed with -config.
	SourceFile
	// SourceEnv is QUILL_* environment variables.
	SourceEnv
	// SourceArgs is overrides set from the command line.
	SourceArgs
)

// Priorities leave gaps so callers can slot extra layers between the
// standard ones.
const (
	PriorityBuiltin    = 0
	PriorityUserGlobal = 100
	PriorityFile       = 200
	PriorityEnv        = 500
	PriorityArgs       = 600
)

var sourceInfo = [...]struct {
	str      string
	layer    string
	priority int
}{
	SourceBuiltin:    {"builtin", "defaults", PriorityBuiltin},
	SourceUserGlobal: {"user", "user", PriorityUserGlobal},
	SourceFile:       {"file", "file", PriorityFile},
	SourceEnv:        {"environment", "environment", PriorityEnv},
	SourceArgs:       {"arguments", "arguments", PriorityArgs},
}

func (s Source) known() bool { return int(s) < len(sourceInfo) }

// String names the source.
func (s Source) String() string {
	if !s.known() {
		return "unknown"
	}
	return sourceInfo[s].str
}

// LayerName is the standard layer name for the source.
func (s Source) LayerName() string {
	if !s.known() {
		return "unknown"
	}
	return sourceInfo[s].layer
}

// Priority is the standard priority for the source.
func (s Source) Priority() int {
	if !s.known() {
		return PriorityBuiltin
	}
	return sourceInfo[s].priority
}

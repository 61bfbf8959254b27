package launcher

// Defaults bundles the baseline configuration values the launcher uses
// before the config file and flags override them.

type Defaults struct {
	Logging LoggingDefaults
	Output  OutputDefaults
	Decode  DecodeDefaults
}

// LoggingDefaults controls the logrus logger.
type LoggingDefaults struct {
	Verbosity int    //	0=fatal … 5=trace; failures are logged at error level, per-file summaries at debug.
	Format    string //	text or json.
	Color     bool   //	Force ANSI colours in text mode even when stderr is not a terminal.
	SentryDSN string //	When set, error-level entries are also sent to Sentry.
}

// OutputDefaults controls how decoded records are rendered.
type OutputDefaults struct {
	Format string //	json, yaml or cbor.
	Path   string //	Destination file; empty means stdout.
}

// DecodeDefaults controls input handling.
type DecodeDefaults struct {
	Kind    string //	auto, puzzle or solution.
	Workers int    //	Files decoded in parallel. Decodes share nothing, so this only bounds memory and open files.
}

// DefaultConfig returns the baseline values.
func DefaultConfig() Defaults {
	return Defaults{
		Logging: LoggingDefaults{
			Verbosity: 3,
			Format:    "text",
		},
		Output: OutputDefaults{
			Format: "json",
		},
		Decode: DecodeDefaults{
			Kind:    "auto",
			Workers: 4,
		},
	}
}

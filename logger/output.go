package logger

// Output controls what categories of information are shown at each verbosity level.
//
// Unlike log levels (which filter by severity), output categories control
// WHAT types of information are displayed regardless of severity.
//
// Verbosity Levels:
//
//	0 (default) - Written files, errors with hints, final status
//	1 (-v)      - + Per-package progress, config summary
//	2 (-vv)     - + Import tables, timing of both render passes
//	3 (-vvv)    - + Per-declaration conversion decisions
//	4 (-vvvv)   - + Full rendered source on stderr

// OutputCategory defines a category of output that can be enabled/disabled
type OutputCategory int

const (
	// Level 0 (default) - Always shown
	OutputResults    OutputCategory = iota // Files written, check results
	OutputErrors                           // Errors with hints
	OutputUserStatus                       // Final success/failure status

	// Level 1 (-v) - Informational
	OutputProgress // Per-package progress
	OutputConfig   // Effective configuration summary

	// Level 2 (-vv) - Detailed
	OutputImports // Import table decisions per file
	OutputTiming  // Render pass timing

	// Level 3 (-vvv) - Debug
	OutputConversion // Go -> Java conversion decisions

	// Level 4 (-vvvv) - Full dump
	OutputSourceDump // Full rendered source
)

// categoryLevels maps each output category to its minimum verbosity level
var categoryLevels = map[OutputCategory]int{
	OutputResults:    VerbosityUser,
	OutputErrors:     VerbosityUser,
	OutputUserStatus: VerbosityUser,

	OutputProgress: VerbosityInfo,
	OutputConfig:   VerbosityInfo,

	OutputImports: VerbosityDebug,
	OutputTiming:  VerbosityDebug,

	OutputConversion: VerbosityTrace,

	OutputSourceDump: VerbosityAll,
}

// ShouldOutput returns true if the given category should be shown at the given verbosity
func ShouldOutput(verbosity int, category OutputCategory) bool {
	minLevel, ok := categoryLevels[category]
	if !ok {
		// Unknown category, default to highest verbosity required
		return verbosity >= VerbosityAll
	}
	return verbosity >= minLevel
}

// categoryNames provides human-readable names for output categories
var categoryNames = map[OutputCategory]string{
	OutputResults:    "results",
	OutputErrors:     "errors",
	OutputUserStatus: "status",
	OutputProgress:   "progress",
	OutputConfig:     "config",
	OutputImports:    "imports",
	OutputTiming:     "timing",
	OutputConversion: "conversion",
	OutputSourceDump: "source-dump",
}

// CategoryName returns the human-readable name for an output category
func CategoryName(category OutputCategory) string {
	if name, ok := categoryNames[category]; ok {
		return name
	}
	return "unknown"
}

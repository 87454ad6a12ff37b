// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 10

// Palette Selection - these keys choose the reference palette used for matching and how matches are shown.
const (
	PaletteDefault    = "palette.default"
	PaletteShowSwatch = "palette.show_swatch"
)

// Notation Parsing - these keys tune how color notations are validated.
const (
	ParseStrictRange = "parse.strict_range"
)

// Lookup History - these keys configure the persistence of previous lookups.
const (
	HistorySave    = "history.save"
	HistorySuggest = "history.suggest"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern the non-interactive application behavior.
const (
	CliColored = "cli.colored"
)

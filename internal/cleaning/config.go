package cleaning

// Mode selects which cleaning operations run and how strict the thresholds
// are.
type Mode string

const (
	// Auto applies only safe, reversible-in-spirit operations.
	Auto Mode = "auto"
	// Aggressive additionally drops constant columns, lowers the missing
	// threshold, and coerces column types.
	Aggressive Mode = "aggressive"
)

// Missing-ratio thresholds above which a column is dropped.
const (
	AutoMissingThreshold       = 0.8
	AggressiveMissingThreshold = 0.5
)

// Config enumerates the enabled operations for one cleaning run. The zero
// value is not usable; build configs with AutoConfig or AggressiveConfig so
// mode and thresholds stay consistent.
type Config struct {
	Mode             Mode
	MissingThreshold float64

	RemoveEmptyColumns       bool
	RemoveHighMissingColumns bool
	RemoveDuplicateRows      bool
	RemoveConstantColumns    bool
	NormalizeColumnNames     bool
	StripWhitespace          bool
	ImputeNumeric            bool
	ImputeCategorical        bool
	CoerceTypes              bool
}

// AutoConfig returns the safe default configuration.
func AutoConfig() Config {
	return Config{
		Mode:                     Auto,
		MissingThreshold:         AutoMissingThreshold,
		RemoveEmptyColumns:       true,
		RemoveHighMissingColumns: true,
		RemoveDuplicateRows:      true,
		NormalizeColumnNames:     true,
		StripWhitespace:          true,
		ImputeNumeric:            true,
		ImputeCategorical:        true,
	}
}

// AggressiveConfig returns the auto configuration with the destructive
// operations enabled and the stricter missing threshold.
func AggressiveConfig() Config {
	cfg := AutoConfig()
	cfg.Mode = Aggressive
	cfg.MissingThreshold = AggressiveMissingThreshold
	cfg.RemoveConstantColumns = true
	cfg.CoerceTypes = true
	return cfg
}

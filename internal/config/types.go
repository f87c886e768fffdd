// Package config loads simgraph's run configuration.
//
// Values are layered from lowest to highest precedence: built-in defaults,
// an optional YAML file, SIMGRAPH_* environment variables, and command-line
// flags that were explicitly set.
package config

import (
	"errors"

	"github.com/katalvlaran/simgraph/dataset"
)

// Defaults for a run over the obesity-levels survey.
const (
	DefaultInput      = "ObesityDataSet_raw_and_data_sinthetic.csv"
	DefaultLabel      = "NObeyesdad"
	DefaultMode       = "all"
	DefaultThreshold  = 0.5
	DefaultSample     = 100
	DefaultOutput     = "text"
	DefaultLogLevel   = "info"
	DefaultDelimiter  = ","
	DefaultComponents = 10
	DefaultHops       = 0
	EnvPrefix         = "SIMGRAPH_"
)

// ErrInvalidConfig is returned when a loaded value is out of range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds all options of one analysis run.
type Config struct {
	// Input is the delimited file to analyze.
	Input string `koanf:"input"`

	// Mode selects the feature columns: 1|2|3 or all|eating|physical.
	// Unrecognized values fall back to all.
	Mode string `koanf:"mode"`

	// Prompt asks for the mode on stdin instead of reading Mode.
	Prompt bool `koanf:"prompt"`

	// Label names the class column used for labelled output.
	Label string `koanf:"label"`

	// Threshold is the inclusive edge distance bound.
	Threshold float64 `koanf:"threshold"`

	// Sample is the number of diameter sweep sources.
	Sample int `koanf:"sample"`

	// Source is the vertex whose distance table is reported.
	Source int `koanf:"source"`

	// Workers bounds the parallel stages; 0 means one per CPU.
	Workers int `koanf:"workers"`

	// Output is the table format: text or markdown.
	Output string `koanf:"output"`

	// Plot, when set, is the path of the distance histogram image.
	Plot string `koanf:"plot"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Delimiter is the single-character field separator of Input.
	Delimiter string `koanf:"delimiter"`

	// Components caps how many components the report lists.
	Components int `koanf:"components"`

	// Hops caps the hop layers reported around Source; 0 means no cap.
	Hops int `koanf:"hops"`

	// Subsets configures the Eating and Physical selections.
	Subsets dataset.Subsets `koanf:"subsets"`
}

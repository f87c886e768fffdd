package dataset

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode chooses which columns feed the feature encoder.
type Mode int

// Selection modes, numbered as the interactive prompt offers them.
const (
	ModeAll      Mode = 1
	ModeEating   Mode = 2
	ModePhysical Mode = 3
)

// String returns the lower-case mode name.
func (m Mode) String() string {
	switch m {
	case ModeEating:
		return "eating"
	case ModePhysical:
		return "physical"
	default:
		return "all"
	}
}

// ParseMode accepts "1", "2", "3" or the mode names (case-insensitive,
// surrounding space ignored). Anything else is ModeAll.
func ParseMode(s string) Mode {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		switch Mode(n) {
		case ModeEating, ModePhysical:
			return Mode(n)
		}

		return ModeAll
	}
	switch s {
	case "eating":
		return ModeEating
	case "physical":
		return ModePhysical
	}

	return ModeAll
}

// Subset names the columns of one fixed selection. Columns (by header
// name) take precedence over Indices when both are set.
type Subset struct {
	Columns []string `koanf:"columns"`
	Indices []int    `koanf:"indices"`
}

// Empty reports whether s names no columns and no indices.
func (s Subset) Empty() bool { return len(s.Columns) == 0 && len(s.Indices) == 0 }

// Subsets holds the configurable Eating and Physical selections.
type Subsets struct {
	Eating   Subset `koanf:"eating"`
	Physical Subset `koanf:"physical"`
}

// DefaultSubsets returns the selections for the obesity-levels survey
// schema (Gender, Age, Height, Weight, family_history_with_overweight,
// FAVC, FCVC, NCP, CAEC, SMOKE, CH2O, SCC, FAF, TUE, CALC, MTRANS,
// NObeyesdad). They name the same columns as positions {4,5,8,10,11,13}
// and {2,3,6,7,9,12} of that schema.
func DefaultSubsets() Subsets {
	return Subsets{
		Eating: Subset{Columns: []string{
			"family_history_with_overweight", "FAVC", "CAEC", "CH2O", "SCC", "TUE",
		}},
		Physical: Subset{Columns: []string{
			"Height", "Weight", "FCVC", "NCP", "SMOKE", "FAF",
		}},
	}
}

// Selection is an ordered list of header indices.
type Selection []int

// Resolve maps mode onto header indices.
//
//   - ModeAll selects every column except the last (the label column).
//   - ModeEating / ModePhysical resolve the matching Subset.
//
// Returns ErrInvalidSchema when a named column is missing, an index is
// outside [0, len(header)), or the selection is empty.
func Resolve(header []string, mode Mode, subsets Subsets) (Selection, error) {
	var sel Selection
	switch mode {
	case ModeEating:
		s, err := resolveSubset(header, subsets.Eating)
		if err != nil {
			return nil, fmt.Errorf("%s selection: %w", mode, err)
		}
		sel = s
	case ModePhysical:
		s, err := resolveSubset(header, subsets.Physical)
		if err != nil {
			return nil, fmt.Errorf("%s selection: %w", mode, err)
		}
		sel = s
	default:
		for i := 0; i < len(header)-1; i++ {
			sel = append(sel, i)
		}
	}
	if len(sel) == 0 {
		return nil, fmt.Errorf("%w: %s selection is empty for %d columns", ErrInvalidSchema, mode, len(header))
	}

	return sel, nil
}

func resolveSubset(header []string, s Subset) (Selection, error) {
	if len(s.Columns) > 0 {
		pos := make(map[string]int, len(header))
		for i := len(header) - 1; i >= 0; i-- { // first occurrence wins
			pos[header[i]] = i
		}
		sel := make(Selection, 0, len(s.Columns))
		for _, name := range s.Columns {
			i, ok := pos[name]
			if !ok {
				return nil, fmt.Errorf("%w: column %q not in header", ErrInvalidSchema, name)
			}
			sel = append(sel, i)
		}

		return sel, nil
	}

	sel := make(Selection, 0, len(s.Indices))
	for _, i := range s.Indices {
		if i < 0 || i >= len(header) {
			return nil, fmt.Errorf("%w: column index %d outside [0, %d)", ErrInvalidSchema, i, len(header))
		}
		sel = append(sel, i)
	}

	return sel, nil
}

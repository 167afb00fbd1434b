package entity

import (
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/user-leveling/internal/domain/error"
)

// Level is a loyalty tier assigned to a user based on usage counters
type Level int

// Levels in ascending order. The numeric values are persisted.
const (
	LevelBasic  Level = 1
	LevelSilver Level = 2
	LevelGold   Level = 3
)

// Levels lists every level from lowest to highest
var Levels = []Level{LevelBasic, LevelSilver, LevelGold}

// LevelOf maps a persisted value back to a Level
func LevelOf(value int) (Level, error) {
	level := Level(value)
	if !level.IsValid() {
		return 0, fmt.Errorf("%w: %d", errs.ErrInvalidLevel, value)
	}
	return level, nil
}

// ParseLevel parses a level name, ignoring case
func ParseLevel(name string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "BASIC":
		return LevelBasic, nil
	case "SILVER":
		return LevelSilver, nil
	case "GOLD":
		return LevelGold, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidLevel, name)
	}
}

// IsValid reports whether the level is one of BASIC, SILVER or GOLD
func (l Level) IsValid() bool {
	return l >= LevelBasic && l <= LevelGold
}

// Value returns the persisted integer value
func (l Level) Value() int {
	return int(l)
}

// Next returns the following tier. ok is false for GOLD.
func (l Level) Next() (next Level, ok bool) {
	switch l {
	case LevelBasic:
		return LevelSilver, true
	case LevelSilver:
		return LevelGold, true
	default:
		return 0, false
	}
}

// String returns the upper-case level name
func (l Level) String() string {
	switch l {
	case LevelBasic:
		return "BASIC"
	case LevelSilver:
		return "SILVER"
	case LevelGold:
		return "GOLD"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

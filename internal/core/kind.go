package core

import (
	"fmt"
	"time"
)

// Kind identifies one of the ten games. The string value is also the game ID
// used by the registry, the CLI and the score store.
type Kind string

const (
	KindAim            Kind = "aim"
	KindChimp          Kind = "chimp"
	KindNumberMemory   Kind = "number-memory"
	KindVisualMemory   Kind = "visual-memory"
	KindVerbalMemory   Kind = "verbal-memory"
	KindSequenceMemory Kind = "sequence-memory"
	KindReaction       Kind = "reaction"
	KindSchulte        Kind = "schulte"
	KindNPuzzle        Kind = "npuzzle"
	KindLastCircle     Kind = "last-circle"
)

// Kinds lists every game kind in menu order.
var Kinds = []Kind{
	KindAim,
	KindChimp,
	KindNumberMemory,
	KindVisualMemory,
	KindVerbalMemory,
	KindSequenceMemory,
	KindReaction,
	KindSchulte,
	KindNPuzzle,
	KindLastCircle,
}

// ScoreOrder tells which direction of a score is better.
type ScoreOrder int

const (
	HigherIsBetter ScoreOrder = iota
	LowerIsBetter
)

func (o ScoreOrder) String() string {
	if o == LowerIsBetter {
		return "lower"
	}
	return "higher"
}

// Unit is the measurement unit of a kind's score.
type Unit string

const (
	UnitMillis  Unit = "ms"
	UnitSeconds Unit = "s"
	UnitLevel   Unit = "level"
	UnitDigits  Unit = "digits"
	UnitNumbers Unit = "numbers"
	UnitWords   Unit = "words"
	UnitCircles Unit = "circles"
)

type kindInfo struct {
	order ScoreOrder
	unit  Unit
}

var kindTable = map[Kind]kindInfo{
	KindAim:            {LowerIsBetter, UnitMillis},
	KindChimp:          {HigherIsBetter, UnitNumbers},
	KindNumberMemory:   {HigherIsBetter, UnitDigits},
	KindVisualMemory:   {HigherIsBetter, UnitLevel},
	KindVerbalMemory:   {HigherIsBetter, UnitWords},
	KindSequenceMemory: {HigherIsBetter, UnitLevel},
	KindReaction:       {LowerIsBetter, UnitMillis},
	KindSchulte:        {LowerIsBetter, UnitSeconds},
	KindNPuzzle:        {LowerIsBetter, UnitSeconds},
	KindLastCircle:     {HigherIsBetter, UnitCircles},
}

// Valid returns true for the ten known kinds.
func (k Kind) Valid() bool {
	_, ok := kindTable[k]
	return ok
}

// Order returns the best-score direction of the kind.
// Unknown kinds are treated as higher-is-better.
func (k Kind) Order() ScoreOrder {
	return kindTable[k].order
}

// Unit returns the unit the kind's score is measured in.
func (k Kind) Unit() Unit {
	return kindTable[k].unit
}

// Better reports whether score a beats score b for this kind.
func (k Kind) Better(a, b float64) bool {
	if k.Order() == LowerIsBetter {
		return a < b
	}
	return a > b
}

// Format renders a score with its unit.
func (k Kind) Format(score float64) string {
	switch k.Unit() {
	case UnitMillis:
		return fmt.Sprintf("%.0f ms", score)
	case UnitSeconds:
		return fmt.Sprintf("%.2f s", score)
	default:
		return fmt.Sprintf("%.0f %s", score, k.Unit())
	}
}

// ParseKind validates a game ID.
func ParseKind(id string) (Kind, error) {
	k := Kind(id)
	if !k.Valid() {
		return "", fmt.Errorf("core: unknown game kind %q", id)
	}
	return k, nil
}

// Millis converts a duration to fractional milliseconds.
func Millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

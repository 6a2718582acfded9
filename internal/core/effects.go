package core

// EventKind names a transition boundary the outside world may react to
// (haptics, sound, logging).
type EventKind string

const (
	EventStart    EventKind = "start"
	EventCorrect  EventKind = "correct"
	EventWrong    EventKind = "wrong"
	EventLevelUp  EventKind = "level_up"
	EventFinished EventKind = "finished"
	EventTick     EventKind = "tick"
)

// Event is emitted by games at transition boundaries.
type Event struct {
	Kind   EventKind
	GameID string
	Phase  Phase
	Level  int
	Score  float64
}

// Effects receives game events. Implementations must not call back into the game.
type Effects interface {
	Notify(ev Event)
}

// NopEffects discards every event.
type NopEffects struct{}

// Notify implements Effects.
func (NopEffects) Notify(Event) {}

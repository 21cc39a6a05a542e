package component

// Faction identifies the two shooter categories for friendly-fire checks.
type Faction int

const (
	FactionPlayer Faction = iota
	FactionEnemy
)

// CombatEventType defines the kind of combat event.
type CombatEventType string

const (
	EventHit       CombatEventType = "hit"
	EventDeath     CombatEventType = "death"
	EventExtraLife CombatEventType = "extra_life"
)

// CombatEvent is emitted during collision resolution.
type CombatEvent struct {
	Type     CombatEventType
	Attacker Faction
	Points   int
	// Grid cell of the destroyed invader, -1/-1 for ship hits.
	Row, Col int
	PosX     float32
	PosY     float32
}

// CombatEventHandler handles combat events.
type CombatEventHandler func(evt CombatEvent)

// CombatEventEmitter allows the resolver to notify listeners (HUD flashes,
// debug overlays) without owning them.
type CombatEventEmitter struct {
	Handlers []CombatEventHandler
}

// Emit sends a combat event to all handlers.
func (e *CombatEventEmitter) Emit(evt CombatEvent) {
	if e == nil || len(e.Handlers) == 0 {
		return
	}
	for _, h := range e.Handlers {
		if h != nil {
			h(evt)
		}
	}
}

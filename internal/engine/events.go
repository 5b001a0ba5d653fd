package engine

// EventKind discriminates the discrete events a session emits each
// tick. Events are the only channel from the simulation to the
// presentation layer; the engine never touches screens or storage.
type EventKind uint8

const (
	EventScoreDelta EventKind = iota
	EventSpawnEffect
	EventFloatingText
	EventLevelUp
	EventGameOver
)

// EffectKind names a visual effect request carried by EventSpawnEffect.
// What the effect looks like is entirely the presentation layer's call.
type EffectKind uint8

const (
	EffectExplosion EffectKind = iota
	EffectHit
	EffectCollect
	EffectShieldDeflect
	EffectBombWave
)

// Event is one discrete state-change notification. Fields are
// populated per kind: Amount for ScoreDelta and LevelUp (the new
// level), Effect for SpawnEffect, Text for FloatingText. X, Y locate
// the event in world cells where that is meaningful.
type Event struct {
	Kind   EventKind
	X, Y   float64
	Amount int
	Effect EffectKind
	Text   string
}

// Outcome is the final session result handed to the leaderboard
// collaborator after game over. The engine only produces it; submitting
// is the caller's business.
type Outcome struct {
	Score int
	Level int
}

package engine

// Kind tags an entity with its simulation behavior. The set is closed:
// motion and collision dispatch switch over it exhaustively.
type Kind uint8

const (
	KindBullet Kind = iota
	KindAsteroid
	KindFragment
	KindPickup
	KindParticle
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindBullet:
		return "bullet"
	case KindAsteroid:
		return "asteroid"
	case KindFragment:
		return "fragment"
	case KindPickup:
		return "pickup"
	case KindParticle:
		return "particle"
	default:
		return "unknown"
	}
}

// AsteroidClass refines asteroid behavior and scoring.
type AsteroidClass uint8

const (
	ClassNormal AsteroidClass = iota
	ClassFast
	ClassHoming
	ClassSplitting
)

// Pattern selects the lateral movement rule for falling obstacles.
type Pattern uint8

const (
	PatternStraight Pattern = iota
	PatternZigzag
	PatternSine
	PatternHoming
)

// PickupType selects the effect applied when a pickup is collected.
type PickupType uint8

const (
	PickupAmmo PickupType = iota
	PickupHealth
	PickupShield
	PickupRapidFire
	PickupBomb
)

// Shape tags the bounding geometry used by narrow-phase tests.
type Shape uint8

const (
	ShapeCircle Shape = iota
	ShapeRect
)

// Entity is any pooled simulated object. Position is the shape center
// for circles and the top-left corner for rects, in world cells.
// Payload fields are only meaningful for the kinds that set them; a
// freshly acquired entity has all of them zeroed and the caller must
// initialize every field its kind needs.
type Entity struct {
	X, Y   float64
	VX, VY float64

	Kind   Kind
	Shape  Shape
	Radius float64 // circle shapes
	W, H   float64 // rect shapes

	// Active is cleared by motion (out of bounds) or collision
	// (consumed/destroyed); the entity stays in its pool's active set
	// until the reclaim phase releases it.
	Active bool

	// Kind-specific payload.
	Class     AsteroidClass
	Pattern   Pattern
	Pickup    PickupType
	Speed     float64 // base fall speed for asteroids
	BaseX     float64 // anchor column for zigzag/sine offsets
	Phase     float64 // per-spawn phase for oscillation variety
	Amplitude float64
	Frequency float64
	Score     int // awarded when destroyed by a bullet
	TTL       int // remaining ticks for particles

	slot int32 // index into the owning pool's backing store
}

// overlaps reports whether two entities' bounding shapes intersect.
func (e *Entity) overlaps(o *Entity) bool {
	switch {
	case e.Shape == ShapeCircle && o.Shape == ShapeCircle:
		return circlesOverlap(e.X, e.Y, e.Radius, o.X, o.Y, o.Radius)
	case e.Shape == ShapeCircle && o.Shape == ShapeRect:
		return circleRectOverlap(e.X, e.Y, e.Radius, o.X, o.Y, o.W, o.H)
	case e.Shape == ShapeRect && o.Shape == ShapeCircle:
		return circleRectOverlap(o.X, o.Y, o.Radius, e.X, e.Y, e.W, e.H)
	default:
		return rectsOverlap(e.X, e.Y, e.W, e.H, o.X, o.Y, o.W, o.H)
	}
}

// bounds returns the entity's axis-aligned bounding box as
// (minX, minY, maxX, maxY).
func (e *Entity) bounds() (float64, float64, float64, float64) {
	if e.Shape == ShapeCircle {
		return e.X - e.Radius, e.Y - e.Radius, e.X + e.Radius, e.Y + e.Radius
	}
	return e.X, e.Y, e.X + e.W, e.Y + e.H
}

// size returns the entity's largest extent, used for the out-of-bounds
// margin during motion.
func (e *Entity) size() float64 {
	if e.Shape == ShapeCircle {
		return e.Radius * 2
	}
	if e.W > e.H {
		return e.W
	}
	return e.H
}

package components

import "github.com/pthm-cable/roids/geom"

// Entity is one slot of an entity pool. Slots are reused: Enabled marks a
// live entity and disabled slots are free.
type Entity struct {
	Kind             Kind
	Enabled          bool    `inspect:"skip"`
	SpawnTime        float64 `inspect:"label,fmt:%.2fs"`
	InvisibleUntil   float64 `inspect:"label,fmt:%.2fs"` // Excluded from collisions and drawn blinking until then
	DamageFlashUntil float64 `inspect:"label,fmt:%.2fs"` // Drawn with the hit tint until then

	Size           float64 `inspect:"label,fmt:%.0f"` // Visual diameter
	ColliderRadius float64 `inspect:"label,fmt:%.1f"`
	Pos            geom.Vec
	PrevPos        geom.Vec `inspect:"skip"`  // Pos before the last motion step
	Facing         geom.Vec `inspect:"angle"` // Unit vector
	Vel            geom.Vec
	RotationSpeed  float64 `inspect:"label,fmt:%.0f deg/s"` // Degrees per second
	Health         float64 `inspect:"bar,max:100"`
	Texture        Texture `inspect:"skip"`

	// State holds the kind-specific record, if the kind has one.
	State State `inspect:"skip"`
}

// State is the kind-specific part of an entity.
type State interface {
	kind() Kind
}

// ShipState is the ship's lifecycle and weapon state.
type ShipState struct {
	RespawnAt    float64 // When a destroyed ship comes back
	NextShotAt   float64
	NextChargeAt float64 // A new charge can start at this time
	ChargeStart  float64
	Charging     bool
	Thrusting    bool // Thrust input was active this step
}

func (*ShipState) kind() Kind { return KindShip }

// TurretState is a turret's aim cycle.
type TurretState struct {
	NextMoveTime float64 // Rotation resumes at this time
	NextShotAt   float64 // Earliest time of the next burst
	NextAimAngle float64 // Degrees
	PrevAimAngle float64
}

func (*TurretState) kind() Kind { return KindTurret }

// Ship returns the ship state, or nil when e is not a ship.
func (e *Entity) Ship() *ShipState {
	s, _ := e.State.(*ShipState)
	return s
}

// Turret returns the turret state, or nil when e is not a turret.
func (e *Entity) Turret() *TurretState {
	s, _ := e.State.(*TurretState)
	return s
}

// Visible reports whether the invisibility window has elapsed.
func (e *Entity) Visible(now float64) bool { return now >= e.InvisibleUntil }

// Collidable reports whether e takes part in collision resolution.
func (e *Entity) Collidable(now float64) bool { return e.Enabled && e.Visible(now) }

// Flashing reports whether the damage tint is active.
func (e *Entity) Flashing(now float64) bool { return now < e.DamageFlashUntil }

// Damage subtracts amount from health, clamped to [0, maxHealth], and opens
// the invisibility and flash windows.
func (e *Entity) Damage(amount, maxHealth, now, invisible, flash float64) {
	e.Health = geom.Clamp(e.Health-amount, 0, maxHealth)
	e.InvisibleUntil = now + invisible
	e.DamageFlashUntil = now + flash
}

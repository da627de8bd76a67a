package landingsim

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrSolidEngineLocked is returned when trying to throttle or shut down a solid engine.
var ErrSolidEngineLocked = errors.New("solid engines cannot be throttled or deactivated")

// EngineKind is the propellant type of an engine.
type EngineKind uint8

const (
	// Solid engines burn at full thrust from ignition until the fuel runs out.
	Solid EngineKind = iota + 1
	// Liquid engines can be throttled and shut down at will.
	Liquid
)

func (k EngineKind) String() string {
	switch k {
	case Solid:
		return "solid"
	case Liquid:
		return "liquid"
	}
	panic("cannot stringify unknown engine kind")
}

// ThrottleControl defines the variant specific behavior of an engine.
type ThrottleControl interface {
	// Throttle changes the thrust percent by delta.
	Throttle(e *Engine, delta float64) error
	// Deactivate shuts the engine down.
	Deactivate(e *Engine) error
}

// SolidControl implements the ThrottleControl of solid engines: every request is refused.
type SolidControl struct{}

// Throttle implements the ThrottleControl interface.
func (SolidControl) Throttle(e *Engine, delta float64) error {
	return ErrSolidEngineLocked
}

// Deactivate implements the ThrottleControl interface.
func (SolidControl) Deactivate(e *Engine) error {
	return ErrSolidEngineLocked
}

// LiquidControl implements the ThrottleControl of liquid engines.
type LiquidControl struct{}

// Throttle implements the ThrottleControl interface.
func (LiquidControl) Throttle(e *Engine, delta float64) error {
	e.thrustPercent = clamp01(e.thrustPercent + delta)
	e.currentThrust = e.MaxThrust * e.thrustPercent
	return nil
}

// Deactivate implements the ThrottleControl interface.
func (LiquidControl) Deactivate(e *Engine) error {
	e.currentThrust = 0
	e.thrustPercent = 0
	return nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Engine is the thruster of a craft.
type Engine struct {
	Part
	Kind          EngineKind
	MaxThrust     float64 // N
	currentThrust float64
	thrustPercent float64
}

// NewSolidEngine returns a new idle solid engine.
func NewSolidEngine(name string, mass, width, height float64, color Color, maxThrust float64) Engine {
	return Engine{Part: Part{name, mass, width, height, color}, Kind: Solid, MaxThrust: maxThrust}
}

// NewLiquidEngine returns a new idle liquid engine.
func NewLiquidEngine(name string, mass, width, height float64, color Color, maxThrust float64) Engine {
	return Engine{Part: Part{name, mass, width, height, color}, Kind: Liquid, MaxThrust: maxThrust}
}

// control returns the ThrottleControl of this engine kind.
func (e *Engine) control() ThrottleControl {
	switch e.Kind {
	case Solid:
		return SolidControl{}
	case Liquid:
		return LiquidControl{}
	}
	panic(fmt.Errorf("unknown engine kind %d", e.Kind))
}

// CurrentThrust returns the current thrust in Newtons.
func (e *Engine) CurrentThrust() float64 {
	return e.currentThrust
}

// ThrustPercent returns the fraction of the max thrust currently applied, in [0, 1].
func (e *Engine) ThrustPercent() float64 {
	return e.thrustPercent
}

// Activate goes to full thrust, whatever the kind of engine.
func (e *Engine) Activate() {
	e.currentThrust = e.MaxThrust
	e.thrustPercent = 1
}

// Deactivate shuts the engine down if its kind allows it.
func (e *Engine) Deactivate() error {
	return e.control().Deactivate(e)
}

// Throttle changes the thrust percent by delta if the engine kind allows it.
func (e *Engine) Throttle(delta float64) error {
	return e.control().Throttle(e, delta)
}

// Reset idles the engine. Only call this when (re)starting a run.
func (e *Engine) Reset() {
	e.currentThrust = 0
	e.thrustPercent = 0
}

// String implements the Stringer interface.
func (e *Engine) String() string {
	return fmt.Sprintf("%s (%s, %.0f N)", e.Name, e.Kind, e.MaxThrust)
}

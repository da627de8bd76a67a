package landingsim

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ThrottleRate is the throttle change per second while throttling up or down.
const ThrottleRate = 10.0

// ErrUnknownIntent is returned for an intent which cannot be applied.
var ErrUnknownIntent = errors.New("unknown intent")

// Intent is a pilot command for one tick.
type Intent uint8

const (
	// RotateLeft rotates counterclockwise at the command module's rotation speed.
	RotateLeft Intent = iota + 1
	// RotateRight rotates clockwise at the command module's rotation speed.
	RotateRight
	// ThrottleUp increases the thrust percent.
	ThrottleUp
	// ThrottleDown decreases the thrust percent.
	ThrottleDown
	// Ignite activates the engine at full thrust.
	Ignite
	// Cutoff deactivates the engine.
	Cutoff
)

func (i Intent) String() string {
	switch i {
	case RotateLeft:
		return "rotate-left"
	case RotateRight:
		return "rotate-right"
	case ThrottleUp:
		return "throttle-up"
	case ThrottleDown:
		return "throttle-down"
	case Ignite:
		return "ignite"
	case Cutoff:
		return "cutoff"
	}
	return fmt.Sprintf("intent(%d)", uint8(i))
}

// IntentFromString returns the intent from its name.
func IntentFromString(name string) (Intent, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "rotate-left", "left":
		return RotateLeft, nil
	case "rotate-right", "right":
		return RotateRight, nil
	case "throttle-up", "up":
		return ThrottleUp, nil
	case "throttle-down", "down":
		return ThrottleDown, nil
	case "ignite", "activate":
		return Ignite, nil
	case "cutoff", "deactivate":
		return Cutoff, nil
	}
	return 0, errors.Wrapf(ErrUnknownIntent, "'%s'", name)
}

// ApplyIntent applies one tick worth of the intent to the craft.
// Refused engine commands (solid engines) are returned as ErrSolidEngineLocked.
func (c *Craft) ApplyIntent(i Intent, timeStep float64) error {
	switch i {
	case RotateLeft:
		c.Rotate(c.CommandModule.RotationSpeed * timeStep)
	case RotateRight:
		c.Rotate(-c.CommandModule.RotationSpeed * timeStep)
	case ThrottleUp:
		return c.Engine.Throttle(ThrottleRate * timeStep)
	case ThrottleDown:
		return c.Engine.Throttle(-ThrottleRate * timeStep)
	case Ignite:
		c.Engine.Activate()
	case Cutoff:
		return c.Engine.Deactivate()
	default:
		return errors.Wrap(ErrUnknownIntent, i.String())
	}
	return nil
}

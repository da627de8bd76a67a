package landingsim

import (
	"testing"

	"github.com/pkg/errors"
)

func TestIntentFromString(t *testing.T) {
	for name, exp := range map[string]Intent{
		"rotate-left":   RotateLeft,
		"Left":          RotateLeft,
		"right":         RotateRight,
		" up ":          ThrottleUp,
		"throttle-down": ThrottleDown,
		"activate":      Ignite,
		"IGNITE":        Ignite,
		"deactivate":    Cutoff,
	} {
		i, err := IntentFromString(name)
		if err != nil {
			t.Fatal(err)
		}
		if i != exp {
			t.Fatalf("'%s' is %s, expected %s", name, i, exp)
		}
	}
	if _, err := IntentFromString("boost"); errors.Cause(err) != ErrUnknownIntent {
		t.Fatalf("expected ErrUnknownIntent, got %v", err)
	}
	// Names round trip.
	for i := RotateLeft; i <= Cutoff; i++ {
		if j, err := IntentFromString(i.String()); err != nil || j != i {
			t.Fatalf("%s does not round trip", i)
		}
	}
	if Intent(0).String() != "intent(0)" {
		t.Fatal("invalid unknown intent name")
	}
}

func TestApplyThrottle(t *testing.T) {
	c := testCraft(t, "poodle")
	for i := 0; i < 3; i++ {
		if err := c.ApplyIntent(ThrottleUp, 0.01); err != nil {
			t.Fatal(err)
		}
	}
	if c.ThrustPercent() < 0.299 || c.ThrustPercent() > 0.301 {
		t.Fatalf("thrust=%f", c.ThrustPercent())
	}
	if err := c.ApplyIntent(ThrottleUp, 1); err != nil || c.ThrustPercent() != 1 {
		t.Fatal("throttle did not saturate")
	}
	if err := c.ApplyIntent(Cutoff, 0.01); err != nil || c.ThrustPercent() != 0 {
		t.Fatal("cutoff failed")
	}
	c = testCraft(t, "hammer")
	if err := c.ApplyIntent(ThrottleUp, 0.01); errors.Cause(err) != ErrSolidEngineLocked {
		t.Fatalf("expected a refusal, got %v", err)
	}
}

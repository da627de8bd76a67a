package landingsim

import (
	"testing"

	kitlog "github.com/go-kit/kit/log"
)

func assertPanic(t *testing.T, f func()) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("code did not panic")
		}
	}()
	f()
}

// testCraft returns the default Moon lander: Mk1 pod, FL-T400 tank and the given engine.
func testCraft(t *testing.T, engine string) *Craft {
	cm, err := CommandModuleFromString("mk1")
	if err != nil {
		t.Fatal(err)
	}
	f, err := FuselageFromString("FL-T400")
	if err != nil {
		t.Fatal(err)
	}
	e, err := EngineFromString(engine)
	if err != nil {
		t.Fatal(err)
	}
	return NewCraft(Moon(), cm, f, e)
}

// testSim returns a silent simulation of testCraft at 60 fps, already reset.
func testSim(t *testing.T, engine string) *Simulation {
	sim := NewSimulation(testCraft(t, engine), DefaultFramesPerSecond)
	sim.SetLogger(kitlog.NewNopLogger())
	sim.Reset()
	return sim
}

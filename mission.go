package landingsim

import (
	"context"
	"math"
	"os"
	"sort"
	"sync"
	"time"

	kitlog "github.com/go-kit/kit/log"
	"github.com/pkg/errors"
)

const (
	// DefaultFramesPerSecond is the default tick rate.
	DefaultFramesPerSecond = 60
	// statusPeriod is the simulated time between two status logs.
	statusPeriod = 10.0
	// predictionHorizon bounds the impact prediction of the status logs, in seconds.
	predictionHorizon = 3600.0
)

// ErrSimulationStopped is returned when commanding a craft which already reached the surface.
var ErrSimulationStopped = errors.New("simulation stopped")

// DefaultEpoch is the wall clock time the runs are assumed to start at.
var DefaultEpoch = time.Date(2022, 4, 22, 0, 0, 0, 0, time.UTC)

// Outcome is the result of a run.
type Outcome uint8

const (
	// Running means the craft has not reached the surface yet.
	Running Outcome = iota
	// Won means the craft touched down slowly and nearly upright.
	Won
	// Lost means the craft crashed.
	Lost
	// TimedOut means the run exceeded its maximum duration.
	TimedOut
	// Cancelled means the run was cancelled by its context.
	Cancelled
)

func (o Outcome) String() string {
	switch o {
	case Running:
		return "running"
	case Won:
		return "won"
	case Lost:
		return "lost"
	case TimedOut:
		return "timeout"
	case Cancelled:
		return "cancelled"
	}
	panic("cannot stringify unknown outcome")
}

// WinCondition is the window of displayed rotation (exclusive, degrees) and the speed (exclusive,
// m/s) which make a touchdown a win.
type WinCondition struct {
	MinRotation, MaxRotation, MaxSpeed float64
}

// DefaultWinCondition requires a mostly upright craft under 10 m/s.
var DefaultWinCondition = WinCondition{70, 110, 10}

// Command holds an intent for a number of consecutive ticks starting At seconds into the run.
type Command struct {
	At     float64
	Intent Intent
	Ticks  int
}

// Plan defines a headless run.
type Plan struct {
	Commands    []Command
	MaxDuration time.Duration // zero means until touchdown
	Win         WinCondition
	Export      ExportConfig
}

// Result summarizes a run.
type Result struct {
	Outcome   Outcome
	Ticks     uint64
	Elapsed   float64 // s
	Speed     float64 // m/s
	Rotation  float64 // degrees
	FuelRatio float64
}

// Simulation drives the fixed time step simulation of a craft.
type Simulation struct {
	Craft    *Craft
	TimeStep float64 // s, 1/fps
	Epoch    time.Time
	logger   kitlog.Logger
	metrics  *Metrics
	histChan chan<- TickState
	tick     uint64
	stopped  bool
	dry      bool // fuel exhaustion was reported
}

// NewSimulation returns a new Simulation of the provided craft at the provided tick rate.
func NewSimulation(c *Craft, framesPerSecond int) *Simulation {
	if framesPerSecond <= 0 {
		panic("frames per second must be positive")
	}
	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	klog = kitlog.With(klog, "craft", c.CommandModule.Name)
	return &Simulation{Craft: c, TimeStep: 1 / float64(framesPerSecond), Epoch: DefaultEpoch, logger: klog}
}

// SetLogger replaces the logger.
func (s *Simulation) SetLogger(l kitlog.Logger) {
	s.logger = l
}

// SetMetrics enables the metrics collection.
func (s *Simulation) SetMetrics(m *Metrics) {
	s.metrics = m
}

// Reset puts the craft back at its starting altitude, above the body on the vertical axis, with the
// horizontal velocity of a circular orbit. The fuel is refilled and the engine idled.
func (s *Simulation) Reset() {
	c := s.Craft
	c.SetPosition(0, float64(c.StartingAltitude)+c.Body.Radius())
	c.SetVelocity(-c.CircularOrbitSpeed(), 0)
	c.SetRotationAngles(0, 0)
	c.Fuselage.ResetFuelLevel()
	c.Engine.Reset()
	s.tick = 0
	s.stopped = false
	s.dry = false
}

// Simulate advances the simulation by one tick, unless it has stopped. It returns whether the
// simulation is still running, i.e. false once the craft has hit the surface.
func (s *Simulation) Simulate() bool {
	if s.stopped {
		return false
	}
	c := s.Craft
	c.UpdatePosition(s.TimeStep)
	c.UpdateRotation()
	s.tick++
	if s.metrics != nil {
		s.metrics.RecordTick()
	}
	if !s.dry && c.MaxFuelLevel() > 0 && c.FuelLevel() <= 0 {
		s.dry = true
		s.logger.Log("level", "critical", "subsys", "prop", "status", "out of fuel", "t(s)", s.Elapsed(), "alt(m)", c.DistanceToSurface())
	}
	if s.histChan != nil {
		s.histChan <- NewTickState(s.tick, s.Elapsed(), c)
	}
	if c.HasCollidedWithSurface() {
		s.stopped = true
		x, y := c.Position()
		s.logger.Log("level", "critical", "subsys", "sim", "collided", c.Body.Name, "t(s)", s.Elapsed(), "x", x, "y", y, "speed(m/s)", c.Speed(), "rot(deg)", c.RotationAngle())
		return false
	}
	return true
}

// Stopped returns whether the craft has reached the surface during this run.
func (s *Simulation) Stopped() bool {
	return s.stopped
}

// Ticks returns the number of ticks since the last reset.
func (s *Simulation) Ticks() uint64 {
	return s.tick
}

// Elapsed returns the simulated time since the last reset, in seconds.
func (s *Simulation) Elapsed() float64 {
	return float64(s.tick) * s.TimeStep
}

// HasWon returns whether the displayed rotation is strictly within (minRotation, maxRotation) and
// the speed strictly under maxSpeed.
func (s *Simulation) HasWon(minRotation, maxRotation, maxSpeed float64) bool {
	rot := s.Craft.RotationAngle()
	return rot > minRotation && rot < maxRotation && s.Craft.Speed() < maxSpeed
}

// Apply applies one tick worth of the intent to the craft. Refusals from solid engines are logged
// and returned.
func (s *Simulation) Apply(i Intent) error {
	if s.stopped {
		return ErrSimulationStopped
	}
	err := s.Craft.ApplyIntent(i, s.TimeStep)
	if errors.Cause(err) == ErrSolidEngineLocked {
		s.logger.Log("level", "warning", "subsys", "prop", "intent", i, "engine", s.Craft.Engine.Name, "message", err)
	}
	return err
}

// LogStatus logs the status of the craft, including where it would hit the surface if coasting.
func (s *Simulation) LogStatus() {
	c := s.Craft
	vert, horiz := c.LocalVelocity()
	kv := []interface{}{"level", "info", "subsys", "sim", "t(s)", s.Elapsed(), "alt(m)", c.DistanceToSurface(), "speed(m/s)", c.Speed(),
		"vspeed(m/s)", vert, "hspeed(m/s)", horiz, "rot(deg)", c.RotationAngle(), "fuel", c.FuelLevel(), "thrust", c.ThrustPercent()}
	if impact, ok := PredictImpact(c, math.Max(s.TimeStep, 0.1), predictionHorizon); ok {
		kv = append(kv, "impact_in(s)", impact.TimeToImpact, "impact_speed(m/s)", impact.Speed)
	}
	s.logger.Log(kv...)
}

// result summarizes the current state of the run.
func (s *Simulation) result(o Outcome) Result {
	c := s.Craft
	r := Result{Outcome: o, Ticks: s.tick, Elapsed: s.Elapsed(), Speed: c.Speed(), Rotation: c.RotationAngle()}
	if c.MaxFuelLevel() > 0 {
		r.FuelRatio = c.FuelLevel() / c.MaxFuelLevel()
	}
	return r
}

// Run resets the simulation and runs it headless with the plan's commands until touchdown, the max
// duration, or the cancellation of the context. Cancellation is only checked between ticks.
func (s *Simulation) Run(ctx context.Context, plan Plan) (Result, error) {
	s.Reset()
	c := s.Craft
	s.logger.Log("level", "notice", "subsys", "sim", "status", "started", "body", c.Body.Name, "fuselage", c.Fuselage.Name,
		"engine", c.Engine.Name, "alt(m)", c.DistanceToSurface(), "dt(s)", s.TimeStep)

	var wg sync.WaitGroup
	var exportErr error
	if !plan.Export.IsUseless() {
		histChan := make(chan TickState, 1000) // a 1k entry buffer
		s.histChan = histChan
		wg.Add(1)
		go func() {
			defer wg.Done()
			exportErr = StreamStates(plan.Export, s.Epoch, histChan)
		}()
		// Write the first data point.
		histChan <- NewTickState(0, 0, c)
	}
	finish := func() {
		if s.histChan != nil {
			close(s.histChan)
			s.histChan = nil
		}
		wg.Wait() // Don't return until we're done writing the file.
	}
	defer finish()

	cmds := scheduled(plan.Commands, s.TimeStep)
	var maxTicks uint64
	if plan.MaxDuration > 0 {
		maxTicks = uint64(math.Ceil(plan.MaxDuration.Seconds()/s.TimeStep - 1e-9))
	}
	statusEvery := uint64(math.Max(1, math.Round(statusPeriod/s.TimeStep)))

	outcome := Running
	for outcome == Running {
		if ctx.Err() != nil {
			outcome = Cancelled
			break
		}
		if maxTicks > 0 && s.tick >= maxTicks {
			outcome = TimedOut
			break
		}
		for _, cmd := range cmds {
			if s.tick >= cmd.start && s.tick < cmd.start+cmd.ticks {
				if err := s.Apply(cmd.intent); err != nil && errors.Cause(err) != ErrSolidEngineLocked {
					return s.result(outcome), errors.Wrapf(err, "could not apply %s at t=%.3fs", cmd.intent, s.Elapsed())
				}
			}
		}
		if !s.Simulate() {
			outcome = Lost
			if s.HasWon(plan.Win.MinRotation, plan.Win.MaxRotation, plan.Win.MaxSpeed) {
				outcome = Won
			}
		} else if s.tick%statusEvery == 0 {
			s.LogStatus()
		}
	}

	res := s.result(outcome)
	s.logger.Log("level", "notice", "subsys", "sim", "status", "finished", "outcome", outcome, "t(s)", res.Elapsed,
		"speed(m/s)", res.Speed, "rot(deg)", res.Rotation, "fuel(%)", 100*res.FuelRatio)
	if s.metrics != nil {
		s.metrics.RecordRun(c.Body.Name, res)
	}
	finish()
	return res, exportErr
}

// schedule is a command converted to ticks.
type schedule struct {
	start, ticks uint64
	intent       Intent
}

func scheduled(cmds []Command, timeStep float64) []schedule {
	out := make([]schedule, 0, len(cmds))
	for _, cmd := range cmds {
		n := cmd.Ticks
		if n <= 0 {
			n = 1
		}
		out = append(out, schedule{uint64(math.Round(math.Max(0, cmd.At) / timeStep)), uint64(n), cmd.Intent})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].start < out[j].start })
	return out
}

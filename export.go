package landingsim

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/soniakeys/meeus/v3/julian"
)

// TickState is a snapshot of the craft at the end of a tick.
type TickState struct {
	Tick           uint64
	Elapsed        float64 // s since the start of the run
	X, Y           float64
	VX, VY         float64
	Altitude       float64
	Speed          float64
	Rotation       float64
	QueuedRotation float64
	Fuel           float64
	ThrustPercent  float64
}

// NewTickState snapshots the craft.
func NewTickState(tick uint64, elapsed float64, c *Craft) TickState {
	x, y := c.Position()
	vx, vy := c.Velocity()
	return TickState{tick, elapsed, x, y, vx, vy, c.DistanceToSurface(), c.Speed(), c.RotationAngle(), c.QueuedRotationAngle(), c.FuelLevel(), c.ThrustPercent()}
}

var csvHeader = []string{"jd", "tick", "time", "x", "y", "vx", "vy", "altitude", "speed", "rotation", "queuedRotation", "fuel", "thrustPercent"}

func (s TickState) record(epoch time.Time) []string {
	dt := epoch.Add(time.Duration(s.Elapsed * float64(time.Second)))
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', 6, 64) }
	return []string{
		strconv.FormatFloat(julian.TimeToJD(dt), 'f', 8, 64),
		strconv.FormatUint(s.Tick, 10),
		f(s.Elapsed), f(s.X), f(s.Y), f(s.VX), f(s.VY), f(s.Altitude), f(s.Speed),
		f(s.Rotation), f(s.QueuedRotation), f(s.Fuel), f(s.ThrustPercent),
	}
}

// ExportConfig configures the exporting of the simulation.
type ExportConfig struct {
	Filename  string
	Dir       string
	AsCSV     bool
	Timestamp bool
	Every     uint64 // only write one state every so many ticks (0 or 1 writes all)
}

// IsUseless returns whether this config doesn't actually do anything.
func (c ExportConfig) IsUseless() bool {
	return !c.AsCSV
}

// Path returns the path of the CSV file for a run started at the provided wall clock time.
func (c ExportConfig) Path(now time.Time) string {
	name := c.Filename
	if name == "" {
		name = "run"
	}
	if c.Timestamp {
		name = fmt.Sprintf("%s-%d-%02d-%02dT%02d.%02d.%02d", name, now.Year(), now.Month(), now.Day(), now.Hour(), now.Minute(), now.Second())
	}
	return filepath.Join(c.Dir, fmt.Sprintf("telemetry-%s.csv", name))
}

// StreamStates writes the states from the channel to the configured CSV file until it is closed.
func StreamStates(conf ExportConfig, epoch time.Time, stateChan <-chan TickState) error {
	f, err := os.Create(conf.Path(time.Now()))
	if err != nil {
		// Keep draining so that the simulation never blocks on us.
		for range stateChan {
		}
		return errors.Wrap(err, "could not create telemetry file")
	}
	defer f.Close()
	return WriteStates(f, conf.Every, epoch, stateChan)
}

// WriteStates writes the states from the channel as CSV records until it is closed.
// Records are stamped with the Julian date of epoch plus the elapsed simulation time.
func WriteStates(w io.Writer, every uint64, epoch time.Time, stateChan <-chan TickState) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return errors.Wrap(err, "could not write header")
	}
	var werr error
	for state := range stateChan {
		if werr != nil || (every > 1 && state.Tick%every != 0) {
			continue
		}
		werr = cw.Write(state.record(epoch))
	}
	cw.Flush()
	if werr != nil {
		return errors.Wrap(werr, "could not write state")
	}
	return errors.Wrap(cw.Error(), "could not flush states")
}

package landingsim

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Scenario is a complete headless run definition, as read from a TOML file.
type Scenario struct {
	FramesPerSecond  int
	Epoch            time.Time
	Body             *CelestialBody
	CommandModule    CommandModule
	Fuselage         Fuselage
	Engine           Engine
	StartingAltitude int
	Plan             Plan
}

type commandConf struct {
	At     float64 `mapstructure:"at"`
	Intent string  `mapstructure:"intent"`
	Ticks  int     `mapstructure:"ticks"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("simulation.fps", DefaultFramesPerSecond)
	v.SetDefault("simulation.max_duration", 30*time.Minute)
	v.SetDefault("simulation.epoch", DefaultEpoch)
	v.SetDefault("body.name", "moon")
	v.SetDefault("rocket.altitude", DefaultStartingAltitude)
	v.SetDefault("rocket.command_module", "Mk1 Command Pod")
	v.SetDefault("rocket.fuselage", "FL-T400 Fuel Tank")
	v.SetDefault("rocket.engine", "terrier")
	v.SetDefault("win.min_rotation", DefaultWinCondition.MinRotation)
	v.SetDefault("win.max_rotation", DefaultWinCondition.MaxRotation)
	v.SetDefault("win.max_speed", DefaultWinCondition.MaxSpeed)
	v.SetDefault("export.csv", false)
	v.SetDefault("export.filename", "run")
	v.SetDefault("export.dir", ".")
	v.SetDefault("export.timestamp", false)
	v.SetDefault("export.every", 1)
}

// LoadScenario reads the scenario from the provided TOML file. Any key may be overridden from the
// environment with the LANDER_ prefix, e.g. LANDER_ROCKET_ALTITUDE=500.
func LoadScenario(path string) (*Scenario, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	v.SetEnvPrefix("LANDER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "could not read scenario %s", path)
	}
	return scenarioFromViper(v)
}

func scenarioFromViper(v *viper.Viper) (*Scenario, error) {
	sc := &Scenario{
		FramesPerSecond:  v.GetInt("simulation.fps"),
		Epoch:            v.GetTime("simulation.epoch").UTC(),
		StartingAltitude: v.GetInt("rocket.altitude"),
	}
	if sc.FramesPerSecond <= 0 {
		return nil, errors.Errorf("simulation.fps must be positive, got %d", sc.FramesPerSecond)
	}

	// Read body
	var err error
	if v.IsSet("body.mass") || v.IsSet("body.radius") || v.IsSet("body.gravity") {
		name := v.GetString("body.name")
		sc.Body, err = NewCustomBody(name, v.GetFloat64("body.mass"), v.GetFloat64("body.radius"), v.GetFloat64("body.gravity"))
	} else {
		sc.Body, err = CelestialBodyFromString(v.GetString("body.name"))
	}
	if err != nil {
		return nil, errors.Wrap(err, "could not read body")
	}

	// Read craft
	if sc.CommandModule, err = CommandModuleFromString(v.GetString("rocket.command_module")); err != nil {
		return nil, errors.Wrap(err, "could not read rocket")
	}
	if sc.Fuselage, err = FuselageFromString(v.GetString("rocket.fuselage")); err != nil {
		return nil, errors.Wrap(err, "could not read rocket")
	}
	if sc.Engine, err = EngineFromString(v.GetString("rocket.engine")); err != nil {
		return nil, errors.Wrap(err, "could not read rocket")
	}

	// Read plan
	sc.Plan = Plan{
		MaxDuration: v.GetDuration("simulation.max_duration"),
		Win: WinCondition{
			MinRotation: v.GetFloat64("win.min_rotation"),
			MaxRotation: v.GetFloat64("win.max_rotation"),
			MaxSpeed:    v.GetFloat64("win.max_speed"),
		},
		Export: ExportConfig{
			AsCSV:     v.GetBool("export.csv"),
			Filename:  v.GetString("export.filename"),
			Dir:       v.GetString("export.dir"),
			Timestamp: v.GetBool("export.timestamp"),
			Every:     uint64(v.GetInt("export.every")),
		},
	}
	var cmds []commandConf
	if err := v.UnmarshalKey("commands", &cmds); err != nil {
		return nil, errors.Wrap(err, "could not read commands")
	}
	for no, cmd := range cmds {
		intent, err := IntentFromString(cmd.Intent)
		if err != nil {
			return nil, errors.Wrapf(err, "commands.%d", no)
		}
		sc.Plan.Commands = append(sc.Plan.Commands, Command{At: cmd.At, Intent: intent, Ticks: cmd.Ticks})
	}
	return sc, nil
}

// Simulation returns a new Simulation of the scenario's craft. Each call builds a new craft.
func (sc *Scenario) Simulation() *Simulation {
	craft := NewCraft(sc.Body, sc.CommandModule, sc.Fuselage, sc.Engine)
	craft.SetStartingAltitude(sc.StartingAltitude)
	sim := NewSimulation(craft, sc.FramesPerSecond)
	sim.Epoch = sc.Epoch
	return sim
}

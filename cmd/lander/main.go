package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	landingsim "github.com/Monstroe/LandingSimulator"
	kitlog "github.com/go-kit/kit/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"gopkg.in/alecthomas/kingpin.v2"
)

// This code reads a scenario, flies it and reports whether the landing was a success.

var (
	app = kingpin.New("lander", "Headless 2D descent simulator.")

	run         = app.Command("run", "Fly a scenario").Default()
	scenario    = run.Flag("scenario", "scenario TOML file").Short('s').Envar("LANDER_CONFIG").Required().ExistingFile()
	runs        = run.Flag("runs", "number of times to fly the scenario").Default("1").Int()
	quiet       = run.Flag("quiet", "only print the outcome").Short('q').Bool()
	dumpMetrics = run.Flag("metrics", "print the run metrics in the Prometheus text format").Bool()

	catalog = app.Command("catalog", "List the available bodies and parts")
)

func main() {
	switch kingpin.MustParse(app.Parse(os.Args[1:])) {
	case run.FullCommand():
		os.Exit(fly())
	case catalog.FullCommand():
		printCatalog()
	}
}

func fly() int {
	sc, err := landingsim.LoadScenario(*scenario)
	if err != nil {
		app.Fatalf("%s", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	reg := prometheus.NewRegistry()
	metrics := landingsim.NewMetrics(reg)

	var logger kitlog.Logger
	if *quiet {
		logger = kitlog.NewNopLogger()
	} else {
		logger = kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
		logger = kitlog.With(logger, "ts", kitlog.DefaultTimestampUTC)
	}

	status := 0
	for i := 0; i < *runs; i++ {
		sim := sc.Simulation()
		sim.SetLogger(kitlog.With(logger, "run", i))
		sim.SetMetrics(metrics)
		res, err := sim.Run(ctx, sc.Plan)
		if err != nil {
			fmt.Fprintf(os.Stderr, "run %d: %s\n", i, err)
			return 2
		}
		verdict := "LOSS"
		if res.Outcome == landingsim.Won {
			verdict = "WIN"
		} else {
			status = 1
		}
		fmt.Printf("%s\t%s\tt=%.2fs\tspeed=%.2fm/s\trotation=%.1f°\tfuel=%.1f%%\n", verdict, res.Outcome, res.Elapsed, res.Speed, res.Rotation, 100*res.FuelRatio)
		if res.Outcome == landingsim.Cancelled {
			break
		}
	}

	if *dumpMetrics {
		families, err := reg.Gather()
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not gather metrics: %s\n", err)
			return 2
		}
		for _, mf := range families {
			if _, err := expfmt.MetricFamilyToText(os.Stdout, mf); err != nil {
				fmt.Fprintf(os.Stderr, "could not print metrics: %s\n", err)
				return 2
			}
		}
	}
	return status
}

func printCatalog() {
	fmt.Println("Bodies:")
	for _, name := range []string{"moon", "mercury", "pluto"} {
		b, _ := landingsim.CelestialBodyFromString(name)
		fmt.Printf("  %s\n", b)
	}
	fmt.Println("Command modules:")
	for _, cm := range landingsim.CommandModules() {
		fmt.Printf("  %-30s %7.0f kg  %5.1f°/s\n", cm.Name, cm.Mass, cm.RotationSpeed)
	}
	fmt.Println("Fuselages:")
	for _, f := range landingsim.Fuselages() {
		fmt.Printf("  %-30s %7.0f kg  fuel %.0f (-%.0f/s)\n", f.Name, f.Mass, f.MaxFuelLevel, f.DepletionRate)
	}
	fmt.Println("Engines:")
	for _, e := range landingsim.Engines() {
		fmt.Printf("  %-40s %7.0f kg  %-6s %8.0f N\n", e.Name, e.Mass, e.Kind, e.MaxThrust)
	}
}

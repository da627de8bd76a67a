package landingsim

import (
	"fmt"
	"strings"
)

// Starting altitude bounds offered when building a craft, in meters.
const (
	MinStartingAltitude  = 100
	MaxStartingAltitude  = 1000
	StartingAltitudeStep = 5
)

// CommandModules returns the available command pods, lightest first.
func CommandModules() []CommandModule {
	return []CommandModule{
		NewCommandModule("Mk1 Command Pod", 860, 12.5, 12.5, "#A9A9A9", 100),
		NewCommandModule("Mk2 Command Pod", 1560, 18.75, 18.75, "#00CED1", 75),
		NewCommandModule("Mk1-3 Command Pod", 2720, 25, 25, "#FFFFFF", 50),
	}
}

// Fuselages returns the available fuel tanks, smallest first.
func Fuselages() []Fuselage {
	return []Fuselage{
		NewFuselage("FL-T400 Fuel Tank", 2250, 12.5, 25, "#F5F5DC", 1000, 4),
		NewFuselage("FL-TX1800 Fuel Tank", 2250, 18.75, 37.5, "#2F4F4F", 10000, 4),
		NewFuselage("Rockomax Jumbo-64 Fuel Tank", 36000, 25, 50, "#FFA500", 100000, 4),
	}
}

// Engines returns the available engines, solid ones first.
func Engines() []Engine {
	return []Engine{
		NewSolidEngine(`F3S0 "Shrimp" Solid Fuel Engine`, 520, 12.5, 6.25, "#FFEFD5", 74500),
		NewSolidEngine(`RT-10 "Hammer" Solid Fuel Engine`, 1200, 18.75, 9.375, "#F5F5F5", 157900),
		NewSolidEngine(`BACC "Thumper" Solid Fuel Engine`, 1500, 25, 12.5, "#A9A9A9", 300000),
		NewLiquidEngine(`LV-909 "Terrier" Liquid Fuel Engine`, 500, 12.5, 6.25, "#FF4500", 60000),
		NewLiquidEngine(`LV-T91 "Cheetah" Liquid Fuel Engine`, 1000, 18.75, 9.375, "#DC143C", 1250000),
		NewLiquidEngine(`RE-L10 "Poodle" Liquid Fuel Engine`, 1750, 25, 12.5, "#708090", 250000),
	}
}

// matchesPart returns whether the query designates this part: its full name, its designation
// (first word, e.g. "FL-T400") or its nickname (e.g. "terrier"), case insensitive.
func matchesPart(name, query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	name = strings.ToLower(name)
	if query == "" {
		return false
	}
	if name == query || strings.Fields(name)[0] == query {
		return true
	}
	if parts := strings.Split(name, `"`); len(parts) == 3 && parts[1] == query {
		return true
	}
	return false
}

// CommandModuleFromString returns the cataloged command module from its name.
func CommandModuleFromString(name string) (CommandModule, error) {
	for _, cm := range CommandModules() {
		if matchesPart(cm.Name, name) {
			return cm, nil
		}
	}
	return CommandModule{}, fmt.Errorf("undefined command module '%s'", name)
}

// FuselageFromString returns the cataloged fuselage from its name.
func FuselageFromString(name string) (Fuselage, error) {
	for _, f := range Fuselages() {
		if matchesPart(f.Name, name) {
			return f, nil
		}
	}
	return Fuselage{}, fmt.Errorf("undefined fuselage '%s'", name)
}

// EngineFromString returns the cataloged engine from its name.
func EngineFromString(name string) (Engine, error) {
	for _, e := range Engines() {
		if matchesPart(e.Name, name) {
			return e, nil
		}
	}
	return Engine{}, fmt.Errorf("undefined engine '%s'", name)
}

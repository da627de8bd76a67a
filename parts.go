package landingsim

import "math"

// Part is the data shared by every component of a craft. Width and height are in meters and only
// matter for display and collision geometry.
type Part struct {
	Name   string
	Mass   float64 // kg
	Width  float64
	Height float64
	Color  Color
}

// CommandModule controls how fast the craft can be rotated.
type CommandModule struct {
	Part
	RotationSpeed float64 // deg/s
}

// NewCommandModule returns a new CommandModule.
func NewCommandModule(name string, mass, width, height float64, color Color, rotationSpeed float64) CommandModule {
	return CommandModule{Part{name, mass, width, height, color}, rotationSpeed}
}

// Fuselage holds the fuel. The fuel level starts full and only goes down during a run.
type Fuselage struct {
	Part
	MaxFuelLevel  float64
	DepletionRate float64 // fuel units per second at full thrust
	fuelLevel     float64
}

// NewFuselage returns a new full Fuselage.
func NewFuselage(name string, mass, width, height float64, color Color, maxFuel, depletionRate float64) Fuselage {
	return Fuselage{Part{name, mass, width, height, color}, maxFuel, depletionRate, maxFuel}
}

// FuelLevel returns the remaining fuel.
func (f *Fuselage) FuelLevel() float64 {
	return f.fuelLevel
}

// LowerFuelLevel burns fuel for one time step at the provided thrust percent, never below zero.
func (f *Fuselage) LowerFuelLevel(timeStep, thrustPercent float64) {
	f.fuelLevel = math.Max(0, f.fuelLevel-f.DepletionRate*timeStep*thrustPercent)
}

// ResetFuelLevel fills the tank. Only call this when (re)starting a run.
func (f *Fuselage) ResetFuelLevel() {
	f.fuelLevel = f.MaxFuelLevel
}

package gomiio

import (
	"slices"
	"strconv"
	"strings"
)

type Power int

const (
	PowerOff Power = 0
	PowerOn  Power = 1
)

type OperationMode int

const (
	ModeHeat       OperationMode = 0
	ModeCool       OperationMode = 1
	ModeAuto       OperationMode = 2
	ModeDehumidify OperationMode = 3
	ModeVentilate  OperationMode = 4
)

type FanSpeed int

const (
	FanLow    FanSpeed = 0
	FanMedium FanSpeed = 1
	FanHigh   FanSpeed = 2
	FanAuto   FanSpeed = 3
)

// SwingMode wire values are inverted relative to Power.
type SwingMode int

const (
	SwingOn  SwingMode = 0
	SwingOff SwingMode = 1
)

// Led carries its literal wire character rather than a number.
type Led string

const (
	LedOn  Led = "0"
	LedOff Led = "a"
)

// Names for converting between wire values and human-readable values
var (
	powerNames = map[Power]string{
		PowerOn:  "On",
		PowerOff: "Off",
	}
	modeNames = map[OperationMode]string{
		ModeHeat:       "Heat",
		ModeCool:       "Cool",
		ModeAuto:       "Auto",
		ModeDehumidify: "Dehumidify",
		ModeVentilate:  "Ventilate",
	}
	fanSpeedNames = map[FanSpeed]string{
		FanLow:    "Low",
		FanMedium: "Medium",
		FanHigh:   "High",
		FanAuto:   "Auto",
	}
	swingNames = map[SwingMode]string{
		SwingOn:  "On",
		SwingOff: "Off",
	}
	ledNames = map[Led]string{
		LedOn:  "On",
		LedOff: "Off",
	}
)

func (p Power) String() string         { return enumName(powerNames, p, strconv.Itoa(int(p))) }
func (m OperationMode) String() string { return enumName(modeNames, m, strconv.Itoa(int(m))) }
func (f FanSpeed) String() string      { return enumName(fanSpeedNames, f, strconv.Itoa(int(f))) }
func (s SwingMode) String() string     { return enumName(swingNames, s, strconv.Itoa(int(s))) }
func (l Led) String() string           { return enumName(ledNames, l, string(l)) }

func (p Power) Valid() bool {
	_, ok := powerNames[p]
	return ok
}

func (m OperationMode) Valid() bool {
	_, ok := modeNames[m]
	return ok
}

func (f FanSpeed) Valid() bool {
	_, ok := fanSpeedNames[f]
	return ok
}

func (s SwingMode) Valid() bool {
	_, ok := swingNames[s]
	return ok
}

func (l Led) Valid() bool {
	_, ok := ledNames[l]
	return ok
}

// ParsePower accepts a power name, ignoring case and surrounding spaces.
func ParsePower(s string) (Power, error) {
	return parseEnum(powerNames, "power", s)
}

func ParseOperationMode(s string) (OperationMode, error) {
	return parseEnum(modeNames, "operation mode", s)
}

func ParseFanSpeed(s string) (FanSpeed, error) {
	return parseEnum(fanSpeedNames, "fan speed", s)
}

func ParseSwingMode(s string) (SwingMode, error) {
	return parseEnum(swingNames, "swing mode", s)
}

func ParseLed(s string) (Led, error) {
	return parseEnum(ledNames, "led", s)
}

func enumName[K comparable](names map[K]string, value K, raw string) string {
	if name, exists := names[value]; exists {
		return name
	}
	return raw
}

// reverseLookup finds the member whose name matches, ignoring case.
func reverseLookup[K comparable](names map[K]string, name string) (K, bool) {
	for value, n := range names {
		if strings.EqualFold(n, name) {
			return value, true
		}
	}
	var zero K
	return zero, false
}

func parseEnum[K comparable](names map[K]string, field, s string) (K, error) {
	if value, ok := reverseLookup(names, strings.TrimSpace(s)); ok {
		return value, nil
	}
	return *new(K), NewInvalidValueError(field, s, "must be one of "+choices(names))
}

func choices[K comparable](names map[K]string) string {
	list := make([]string, 0, len(names))
	for _, n := range names {
		list = append(list, n)
	}
	slices.Sort(list)
	return strings.Join(list, ", ")
}

package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/jattkaim/gomiio"
)

type line struct {
	label string
	value string
}

// renderStatus formats a status report one field per line.
func renderStatus(status gomiio.Status) string {
	var lines []line
	switch s := status.(type) {
	case *gomiio.AirConditioningCompanionStatus:
		lines = companionLines(s)
	case *gomiio.PowerStripStatus:
		lines = powerStripLines(s)
	case *gomiio.AirPurifierStatus:
		lines = purifierLines(s)
	default:
		lines = fieldLines(status.Fields())
	}
	return formatLines(lines)
}

func companionLines(s *gomiio.AirConditioningCompanionStatus) []line {
	loadPower := "unavailable"
	if lp, err := s.LoadPower(); err == nil {
		loadPower = strconv.Itoa(lp)
	}
	return []line{
		{"Power", s.Power().String()},
		{"Load power", loadPower},
		{"Air Condition model", s.AirConditionModel()},
		{"LED", s.Led().String()},
		{"Target temperature", withUnit(s.TargetTemperature(), "°C")},
		{"Swing mode", s.SwingMode().String()},
		{"Fan speed", s.FanSpeed().String()},
		{"Mode", s.Mode().String()},
	}
}

func powerStripLines(s *gomiio.PowerStripStatus) []line {
	return []line{
		{"Power", s.Power().String()},
		{"Temperature", withUnit(s.Temperature(), "°C")},
		{"Voltage", withUnit(s.Voltage(), "V")},
		{"Current", withUnit(s.Current(), "A")},
		{"Load power", withUnit(s.LoadPower(), "W")},
		{"Power factor", s.PowerFactor().String()},
		{"Power price", s.PowerPrice().String()},
		{"Leakage current", withUnit(s.LeakageCurrent(), "A")},
		{"Mode", s.Mode().String()},
		{"WiFi LED", s.WifiLed().String()},
	}
}

func purifierLines(s *gomiio.AirPurifierStatus) []line {
	return []line{
		{"Power", s.Power().String()},
		{"AQI", withUnit(s.AQI(), "μg/m³")},
		{"Temperature", withUnit(s.Temperature(), "°C")},
		{"Humidity", withUnit(s.Humidity(), "%")},
		{"Mode", s.Mode().String()},
		{"LED", s.Led().String()},
		{"LED brightness", s.LedBrightness().String()},
		{"Buzzer", s.Buzzer().String()},
		{"Child lock", s.ChildLock().String()},
		{"Humidity limit", withUnit(s.HumidityLimit(), "%")},
		{"Favorite level", s.FavoriteLevel().String()},
		{"Filter life remaining", withUnit(s.FilterLifeRemaining(), "%")},
		{"Filter hours used", s.FilterHoursUsed().String()},
		{"Use time", withUnit(s.UseTime(), "s")},
		{"Motor speed", withUnit(s.MotorSpeed(), "rpm")},
	}
}

func fieldLines(fields map[string]any) []line {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	lines := make([]line, 0, len(keys))
	for _, k := range keys {
		value := "unavailable"
		if v := fields[k]; v != nil {
			value = fmt.Sprint(v)
		}
		lines = append(lines, line{k, value})
	}
	return lines
}

// withUnit appends unit only when the field carries a value.
func withUnit[T any](f gomiio.Field[T], unit string) string {
	if !f.Available() {
		return f.String()
	}
	return f.String() + " " + unit
}

func formatLines(lines []line) string {
	var b strings.Builder
	for i, l := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s: %s", l.label, l.value)
	}
	return b.String()
}

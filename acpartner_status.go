package gomiio

import (
	"fmt"
	"strconv"
)

// Character ranges inside the state element of get_model_and_state.
const (
	stateIndex = 1

	powerOffset      = 2
	modeOffset       = 3
	fanSpeedOffset   = 4
	swingOffset      = 5
	targetTempOffset = 6
	ledOffset        = 8
)

// AirConditioningCompanionStatus decodes a get_model_and_state response:
//
//	['010500978022222102', '010201190280222221', '2']
//
// Element 0 is the air conditioner model, element 1 the packed state and
// element 2 the load power.
type AirConditioningCompanionStatus struct {
	data []string
}

// NewAirConditioningCompanionStatus wraps a get_model_and_state result. The
// slice is copied.
func NewAirConditioningCompanionStatus(data []string) *AirConditioningCompanionStatus {
	return &AirConditioningCompanionStatus{data: append([]string(nil), data...)}
}

// LoadPower is the current power load of the air conditioner.
func (s *AirConditioningCompanionStatus) LoadPower() (int, error) {
	if len(s.data) < 3 {
		return 0, NewParseError("load power missing from response", nil)
	}
	v, err := strconv.Atoi(s.data[2])
	if err != nil {
		return 0, NewParseError(fmt.Sprintf("load power %q", s.data[2]), err)
	}
	return v, nil
}

// AirConditionModel is the model identifier of the paired air conditioner.
func (s *AirConditioningCompanionStatus) AirConditionModel() string {
	if len(s.data) == 0 {
		return ""
	}
	return s.data[0]
}

// Power is "on" or "off".
func (s *AirConditioningCompanionStatus) Power() Field[string] {
	return mapField(s.digit(powerOffset), func(v int) string {
		return onOff(Power(v) == PowerOn)
	})
}

func (s *AirConditioningCompanionStatus) IsOn() Field[bool] {
	return mapField(s.Power(), func(p string) bool { return p == "on" })
}

// Led is "on" or "off" from the Led wire character; any other character is unavailable.
func (s *AirConditioningCompanionStatus) Led() Field[string] {
	raw, ok := s.state(ledOffset, ledOffset+1)
	return tryParse(raw, ok, func(c string) (string, error) {
		led := Led(c)
		if !led.Valid() {
			return "", fmt.Errorf("unknown led character %q", c)
		}
		return onOff(led == LedOn), nil
	})
}

// TargetTemperature in degrees Celsius.
func (s *AirConditioningCompanionStatus) TargetTemperature() Field[int] {
	raw, ok := s.state(targetTempOffset, targetTempOffset+2)
	return tryParse(raw, ok, func(h string) (int, error) {
		v, err := strconv.ParseUint(h, 16, 8)
		return int(v), err
	})
}

func (s *AirConditioningCompanionStatus) SwingMode() Field[SwingMode] {
	return enumField(s.digit(swingOffset), func(v int) SwingMode { return SwingMode(v) })
}

func (s *AirConditioningCompanionStatus) FanSpeed() Field[FanSpeed] {
	return enumField(s.digit(fanSpeedOffset), func(v int) FanSpeed { return FanSpeed(v) })
}

func (s *AirConditioningCompanionStatus) Mode() Field[OperationMode] {
	return enumField(s.digit(modeOffset), func(v int) OperationMode { return OperationMode(v) })
}

// Fields flattens the status for JSON output.
func (s *AirConditioningCompanionStatus) Fields() map[string]any {
	fields := map[string]any{
		"power":               s.Power(),
		"air_condition_model": s.AirConditionModel(),
		"led":                 s.Led(),
		"target_temperature":  s.TargetTemperature(),
		"swing_mode":          mapField(s.SwingMode(), SwingMode.String),
		"fan_speed":           mapField(s.FanSpeed(), FanSpeed.String),
		"mode":                mapField(s.Mode(), OperationMode.String),
	}
	if lp, err := s.LoadPower(); err == nil {
		fields["load_power"] = lp
	} else {
		fields["load_power"] = nil
	}
	return fields
}

func (s *AirConditioningCompanionStatus) String() string {
	loadPower := unavailable
	if lp, err := s.LoadPower(); err == nil {
		loadPower = strconv.Itoa(lp)
	}
	return fmt.Sprintf("<AirConditioningCompanionStatus power=%s, load_power=%s, "+
		"air_condition_model=%s, led=%s, target_temperature=%s, swing_mode=%s, "+
		"fan_speed=%s, mode=%s>",
		s.Power(), loadPower, s.AirConditionModel(), s.Led(),
		s.TargetTemperature(), s.SwingMode(), s.FanSpeed(), s.Mode())
}

// state returns the [from:to] range of the state element, reporting false
// when the element or range is missing.
func (s *AirConditioningCompanionStatus) state(from, to int) (string, bool) {
	if len(s.data) <= stateIndex {
		return "", false
	}
	st := s.data[stateIndex]
	if to > len(st) {
		return "", false
	}
	return st[from:to], true
}

func (s *AirConditioningCompanionStatus) digit(offset int) Field[int] {
	raw, ok := s.state(offset, offset+1)
	return tryParse(raw, ok, strconv.Atoi)
}

type validator interface {
	Valid() bool
}

// enumField maps a decoded digit to an enum, treating undeclared members as unavailable.
func enumField[E validator](digit Field[int], conv func(int) E) Field[E] {
	return tryParse(digit.value, digit.ok, func(v int) (E, error) {
		e := conv(v)
		if !e.Valid() {
			return e, fmt.Errorf("undeclared value %d", v)
		}
		return e, nil
	})
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

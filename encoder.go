package gomiio

import (
	"strconv"
	"strings"
)

// ModelIdentifier is the appliance model/firmware string reported by the
// companion, e.g. 010500978022222102.
type ModelIdentifier string

const minModelLength = 16

// offsetBase is the protocol constant subtracted in the [tt1]/[tt4]/[tt7] bytes.
const offsetBase = 17

// Prefix is the template key: characters [0:2] followed by [8:16].
func (m ModelIdentifier) Prefix() string {
	s := string(m)
	return clampSlice(s, 0, 2) + clampSlice(s, 8, 16)
}

// Suffix is the last character, appended verbatim to encoded commands.
func (m ModelIdentifier) Suffix() string {
	if len(m) == 0 {
		return ""
	}
	return string(m[len(m)-1:])
}

// Validate checks the identifier is long enough to carry a prefix and suffix.
func (m ModelIdentifier) Validate() error {
	if len(m) < minModelLength {
		return NewInvalidValueError("model", string(m), "must be at least 16 characters long")
	}
	return nil
}

func clampSlice(s string, from, to int) string {
	if from > len(s) {
		return ""
	}
	if to > len(s) {
		to = len(s)
	}
	return s[from:to]
}

// Configuration is the desired air conditioner state.
// Temperature is not range checked; templates hex-encode it as is.
type Configuration struct {
	Power       Power
	Mode        OperationMode
	FanSpeed    FanSpeed
	SwingMode   SwingMode
	Temperature int
	Led         Led
}

// Validate rejects values outside the declared enumerations.
func (c Configuration) Validate() error {
	switch {
	case !c.Power.Valid():
		return NewInvalidValueError("power", int(c.Power), "must be one of "+choices(powerNames))
	case !c.Mode.Valid():
		return NewInvalidValueError("operation mode", int(c.Mode), "must be one of "+choices(modeNames))
	case !c.FanSpeed.Valid():
		return NewInvalidValueError("fan speed", int(c.FanSpeed), "must be one of "+choices(fanSpeedNames))
	case !c.SwingMode.Valid():
		return NewInvalidValueError("swing mode", int(c.SwingMode), "must be one of "+choices(swingNames))
	case !c.Led.Valid():
		return NewInvalidValueError("led", string(c.Led), "must be one of "+choices(ledNames))
	}
	return nil
}

// Encode builds the send_cmd payload for model. Models whose own template
// carries a literal off command use it verbatim when powering off.
func Encode(model ModelIdentifier, cfg Configuration) string {
	prefix := model.Prefix()

	if cfg.Power == PowerOff {
		if t, exists := exactTemplate(prefix); exists && t.HasOff() {
			return prefix + t.Off
		}
	}

	t := LookupTemplate(prefix)
	replacer := strings.NewReplacer(
		"[po]", strconv.Itoa(int(cfg.Power)),
		"[mo]", strconv.Itoa(int(cfg.Mode)),
		"[wi]", strconv.Itoa(int(cfg.FanSpeed)),
		"[sw]", strconv.Itoa(int(cfg.SwingMode)),
		"[tt]", hexUpper(cfg.Temperature),
		"[li]", string(cfg.Led),
		"[tt1]", temperatureOffset(1, cfg.Temperature),
		"[tt4]", temperatureOffset(4, cfg.Temperature),
		"[tt7]", temperatureOffset(7, cfg.Temperature),
	)

	return prefix + replacer.Replace(t.Base) + model.Suffix()
}

func temperatureOffset(k, temperature int) string {
	v := (k + temperature - offsetBase) % 16
	if v < 0 {
		v += 16
	}
	return hexUpper(v)
}

func hexUpper(v int) string {
	return strings.ToUpper(strconv.FormatInt(int64(v), 16))
}

package gomiio

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAirConditioningCompanionStatus(t *testing.T) {
	status := NewAirConditioningCompanionStatus([]string{"010500978022222102", "010201190280222221", "2"})

	assert.Equal(t, Available("off"), status.Power())
	assert.Equal(t, Available(false), status.IsOn())
	assert.Equal(t, Available(ModeAuto), status.Mode())
	assert.Equal(t, Available(FanLow), status.FanSpeed())
	assert.Equal(t, Available(SwingOff), status.SwingMode())
	assert.Equal(t, Available(25), status.TargetTemperature())
	assert.Equal(t, Available("on"), status.Led())
	assert.Equal(t, "010500978022222102", status.AirConditionModel())

	lp, err := status.LoadPower()
	require.NoError(t, err)
	assert.Equal(t, 2, lp)
}

func TestAirConditioningCompanionStatusUnavailable(t *testing.T) {
	tests := []struct {
		name  string
		data  []string
		check func(t *testing.T, s *AirConditioningCompanionStatus)
	}{
		{
			name: "state element missing",
			data: []string{"010500978022222102"},
			check: func(t *testing.T, s *AirConditioningCompanionStatus) {
				assert.False(t, s.Power().Available())
				assert.False(t, s.Mode().Available())
				assert.False(t, s.Led().Available())
				assert.False(t, s.TargetTemperature().Available())
			},
		},
		{
			name: "short state",
			data: []string{"010500978022222102", "0102", "2"},
			check: func(t *testing.T, s *AirConditioningCompanionStatus) {
				assert.Equal(t, Available("off"), s.Power())
				assert.Equal(t, Available(ModeAuto), s.Mode())
				assert.False(t, s.FanSpeed().Available())
				assert.False(t, s.SwingMode().Available())
				assert.False(t, s.TargetTemperature().Available())
				assert.False(t, s.Led().Available())
			},
		},
		{
			name: "undeclared mode",
			data: []string{"010500978022222102", "010291190280222221", "2"},
			check: func(t *testing.T, s *AirConditioningCompanionStatus) {
				assert.False(t, s.Mode().Available())
				assert.Equal(t, Available(FanMedium), s.FanSpeed())
			},
		},
		{
			name: "non numeric digits",
			data: []string{"010500978022222102", "01xx11zz0280222221", "2"},
			check: func(t *testing.T, s *AirConditioningCompanionStatus) {
				assert.False(t, s.Power().Available())
				assert.False(t, s.IsOn().Available())
				assert.False(t, s.TargetTemperature().Available())
				assert.Equal(t, Available(SwingOff), s.SwingMode())
			},
		},
		{
			name: "led off character",
			data: []string{"010500978022222102", "0112011Aa280222221", "2"},
			check: func(t *testing.T, s *AirConditioningCompanionStatus) {
				assert.Equal(t, Available("on"), s.Power())
				assert.Equal(t, Available(26), s.TargetTemperature())
				assert.Equal(t, Available("off"), s.Led())
			},
		},
		{
			name: "unknown led character",
			data: []string{"010500978022222102", "01120119x280222221", "2"},
			check: func(t *testing.T, s *AirConditioningCompanionStatus) {
				assert.False(t, s.Led().Available())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, NewAirConditioningCompanionStatus(tt.data))
		})
	}
}

func TestAirConditioningCompanionLoadPowerErrors(t *testing.T) {
	var parseErr *ParseError

	_, err := NewAirConditioningCompanionStatus([]string{"model", "state"}).LoadPower()
	assert.ErrorAs(t, err, &parseErr)

	_, err = NewAirConditioningCompanionStatus([]string{"model", "state", "abc"}).LoadPower()
	assert.ErrorAs(t, err, &parseErr)

	assert.Equal(t, "", NewAirConditioningCompanionStatus(nil).AirConditionModel())
}

func TestAirConditioningCompanionStatusString(t *testing.T) {
	status := NewAirConditioningCompanionStatus([]string{"010500978022222102", "010201190280222221", "2"})

	assert.Equal(t, "<AirConditioningCompanionStatus power=off, load_power=2, "+
		"air_condition_model=010500978022222102, led=on, target_temperature=25, "+
		"swing_mode=Off, fan_speed=Low, mode=Auto>", status.String())

	missing := NewAirConditioningCompanionStatus([]string{"010500978022222102"})
	assert.Contains(t, missing.String(), "load_power=unavailable")
	assert.Contains(t, missing.String(), "mode=unavailable>")
}

func TestAirConditioningCompanionStatusFieldsJSON(t *testing.T) {
	status := NewAirConditioningCompanionStatus([]string{"010500978022222102", "0102"})

	raw, err := json.Marshal(status.Fields())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "off", decoded["power"])
	assert.Equal(t, "Auto", decoded["mode"])
	assert.Nil(t, decoded["fan_speed"])
	assert.Nil(t, decoded["load_power"])
	assert.Contains(t, decoded, "target_temperature")
}

func TestProperties(t *testing.T) {
	props := NewProperties([]string{"power", "temperature"}, []any{"on"})

	assert.Equal(t, Available("on"), props.Text("power"))
	assert.False(t, props.Float("temperature").Available())
	assert.Equal(t, []string{"power", "temperature"}, props.Names())
	assert.Equal(t, map[string]any{"power": "on", "temperature": nil}, props.All())
	assert.Equal(t, 1, props.Len())
	assert.True(t, props.Has("power"))
	assert.False(t, props.Has("temperature"))
}

func TestPropertiesReaders(t *testing.T) {
	props := NewProperties(
		[]string{"f", "i", "frac", "s", "nil", "bad", "led"},
		[]any{48.7, float64(49), 4.5, "12", nil, []any{1}, "off"},
	)

	assert.Equal(t, Available(48.7), props.Float("f"))
	assert.Equal(t, Available(49), props.Int("i"))
	assert.False(t, props.Int("frac").Available())
	assert.Equal(t, Available(12), props.Int("s"))
	assert.Equal(t, Available(12.0), props.Float("s"))
	assert.False(t, props.Text("nil").Available())
	assert.False(t, props.Text("bad").Available())
	assert.False(t, props.Float("bad").Available())
	assert.Equal(t, Available(false), props.OnOff("led"))
	assert.False(t, props.Text("never-requested").Available())
}

func TestPowerStripStatus(t *testing.T) {
	props := NewProperties(powerStripProperties, []any{
		"on", 48.7, 0.05, "green", 4.09, "off", float64(49), float64(230), 0.98, float64(3),
	})
	status := NewPowerStripStatus(props)

	assert.Equal(t, Available(true), status.IsOn())
	assert.Equal(t, Available(48.7), status.Temperature())
	assert.Equal(t, Available(0.05), status.Current())
	assert.Equal(t, Available(PowerModeEco), status.Mode())
	assert.Equal(t, Available(4.09), status.LoadPower())
	assert.Equal(t, Available(false), status.WifiLed())
	assert.Equal(t, Available(49), status.PowerPrice())
	assert.Equal(t, Available(230), status.Voltage())
	assert.Equal(t, Available(0.98), status.PowerFactor())
	assert.Equal(t, Available(3), status.LeakageCurrent())
}

func TestPowerStripStatusMissingOrUnknown(t *testing.T) {
	props := NewProperties(powerStripProperties, []any{"on", 48.7, 0.05, "turbo"})
	status := NewPowerStripStatus(props)

	assert.False(t, status.Mode().Available())
	assert.False(t, status.LoadPower().Available())
	assert.Contains(t, status.String(), "mode=unavailable")
	assert.False(t, status.Fields()["mode"].(Field[string]).Available())
}

func TestAirPurifierStatus(t *testing.T) {
	props := NewProperties(airPurifierProperties, []any{
		"on", float64(10), float64(60), float64(223),
		"idle", "off", float64(2), "on", "off",
		float64(60), float64(2), float64(1),
		float64(12), float64(80), "off",
		float64(682), float64(12345), float64(354),
	})
	status := NewAirPurifierStatus(props)

	assert.Equal(t, Available(true), status.IsOn())
	assert.Equal(t, Available(10), status.AQI())
	assert.Equal(t, Available(60), status.Humidity())
	assert.Equal(t, Available(22.3), status.Temperature())
	assert.Equal(t, Available("idle"), status.Mode())
	assert.Equal(t, Available(false), status.Led())
	assert.Equal(t, Available(LedBrightnessOff), status.LedBrightness())
	assert.Equal(t, Available(true), status.Buzzer())
	assert.Equal(t, Available(false), status.ChildLock())
	assert.Equal(t, Available(60), status.HumidityLimit())
	assert.Equal(t, Available(12), status.FavoriteLevel())
	assert.Equal(t, Available(80), status.FilterLifeRemaining())
	assert.Equal(t, Available(682), status.FilterHoursUsed())
	assert.Equal(t, Available(354), status.MotorSpeed())
}

func TestAirPurifierLedBrightnessUnknown(t *testing.T) {
	props := NewProperties([]string{"led_b"}, []any{float64(7)})
	assert.False(t, NewAirPurifierStatus(props).LedBrightness().Available())
}

func TestField(t *testing.T) {
	present := Available(3)
	missing := Unavailable[int]()

	v, ok := present.Get()
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, "3", present.String())
	assert.Equal(t, 3, present.OrElse(9))

	_, ok = missing.Get()
	assert.False(t, ok)
	assert.Equal(t, "unavailable", missing.String())
	assert.Equal(t, 9, missing.OrElse(9))

	raw, err := json.Marshal(map[string]Field[int]{"a": present, "b": missing})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": 3, "b": null}`, string(raw))
}

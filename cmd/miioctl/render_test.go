package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jattkaim/gomiio"
)

func TestRenderCompanionStatus(t *testing.T) {
	status := gomiio.NewAirConditioningCompanionStatus([]string{
		"010500978022222102", "010201190280222221", "2",
	})

	expected := "Power: off\n" +
		"Load power: 2\n" +
		"Air Condition model: 010500978022222102\n" +
		"LED: on\n" +
		"Target temperature: 25 °C\n" +
		"Swing mode: Off\n" +
		"Fan speed: Low\n" +
		"Mode: Auto"

	assert.Equal(t, expected, renderStatus(status))
}

func TestRenderCompanionStatusUnavailable(t *testing.T) {
	status := gomiio.NewAirConditioningCompanionStatus([]string{"010500978022222102"})

	out := renderStatus(status)
	assert.Contains(t, out, "Load power: unavailable")
	assert.Contains(t, out, "Target temperature: unavailable\n")
	assert.Contains(t, out, "Mode: unavailable")
}

func TestRenderPowerStripStatus(t *testing.T) {
	props := gomiio.NewProperties(
		[]string{"power", "temperature", "current", "mode", "power_consume_rate", "wifi_led", "power_price"},
		[]any{"on", 48.7, 0.05, nil, 4.09, "on", float64(49)},
	)

	out := renderStatus(gomiio.NewPowerStripStatus(props))
	assert.Contains(t, out, "Power: on\n")
	assert.Contains(t, out, "Temperature: 48.7 °C\n")
	assert.Contains(t, out, "Load power: 4.09 W\n")
	assert.Contains(t, out, "Power price: 49\n")
	assert.Contains(t, out, "Mode: unavailable\n")
	assert.Contains(t, out, "Voltage: unavailable\n")
	assert.Contains(t, out, "WiFi LED: true")
}

func TestRenderAirPurifierStatus(t *testing.T) {
	props := gomiio.NewProperties(
		[]string{"power", "aqi", "temp_dec", "led_b"},
		[]any{"on", float64(12), float64(223), float64(1)},
	)

	out := renderStatus(gomiio.NewAirPurifierStatus(props))
	assert.Contains(t, out, "AQI: 12 μg/m³\n")
	assert.Contains(t, out, "Temperature: 22.3 °C\n")
	assert.Contains(t, out, "LED brightness: dim\n")
	assert.Contains(t, out, "Humidity: unavailable\n")
}

type plainStatus map[string]any

func (p plainStatus) String() string         { return "plain" }
func (p plainStatus) Fields() map[string]any { return p }

func TestRenderFallsBackToSortedFields(t *testing.T) {
	out := renderStatus(plainStatus{"b": 2, "a": nil})
	assert.Equal(t, "a: unavailable\nb: 2", out)
}

package main

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jattkaim/gomiio"
)

type call struct {
	method string
	params []any
}

// recordingSender keeps every call and answers from replies by method.
type recordingSender struct {
	mu      sync.Mutex
	calls   []call
	replies map[string]any
	err     error
}

func (s *recordingSender) Send(_ context.Context, method string, params []any) (any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, call{method: method, params: params})
	if s.err != nil {
		return nil, s.err
	}
	if r, ok := s.replies[method]; ok {
		return r, nil
	}
	return []any{"ok"}, nil
}

var companionState = []any{"010500978022222102", "010201190280222221", "2"}

func runCommand(t *testing.T, sender *recordingSender, family gomiio.Family, name string, args ...string) (string, error) {
	t.Helper()
	act, err := prepareCommand(name, args, family)
	if err != nil {
		return "", err
	}
	return act(context.Background(), gomiio.NewClient(sender, nil))
}

func TestCommandMessagesAndCalls(t *testing.T) {
	tests := []struct {
		name     string
		family   gomiio.Family
		command  string
		args     []string
		expected string
		method   string
		params   []any
	}{
		{
			name:     "ac power on",
			family:   gomiio.FamilyACPartner,
			command:  "on",
			expected: "Powering the air condition on",
			method:   "set_power",
			params:   []any{"on"},
		},
		{
			name:     "strip power off",
			family:   gomiio.FamilyPowerStrip,
			command:  "off",
			expected: "Powering off",
			method:   "set_power",
			params:   []any{"off"},
		},
		{
			name:     "learn default slot",
			family:   gomiio.FamilyACPartner,
			command:  "learn",
			expected: "Learning infrared command into storage slot 30",
			method:   "start_ir_learn",
			params:   []any{30},
		},
		{
			name:     "learn stop explicit slot",
			family:   gomiio.FamilyACPartner,
			command:  "learn-stop",
			args:     []string{"12"},
			expected: "Learning infrared command into storage slot 12 stopped",
			method:   "end_ir_learn",
			params:   []any{12},
		},
		{
			name:     "send ir code",
			family:   gomiio.FamilyACPartner,
			command:  "send-ir-code",
			args:     []string{"FE00000000"},
			expected: "Sending the supplied infrared command",
			method:   "send_ir_code",
			params:   []any{"FE00000000"},
		},
		{
			name:     "send command",
			family:   gomiio.FamilyACPartner,
			command:  "send-command",
			args:     []string{"0180111111"},
			expected: "Sending a command to the air conditioner",
			method:   "send_cmd",
			params:   []any{"0180111111"},
		},
		{
			name:     "send configuration",
			family:   gomiio.FamilyACPartner,
			command:  "send-configuration",
			args:     []string{"010500978022222102", "on", "cool", "24", "auto", "off", "on"},
			expected: "Sending a configuration to the air conditioner",
			method:   "send_cmd",
			params:   []any{"0180222221" + "1131180" + "2"},
		},
		{
			name:     "strip power mode",
			family:   gomiio.FamilyPowerStrip,
			command:  "set-power-mode",
			args:     []string{"eco"},
			expected: "Setting mode to Eco",
			method:   "set_power_mode",
			params:   []any{"green"},
		},
		{
			name:     "strip wifi led",
			family:   gomiio.FamilyPowerStrip,
			command:  "set-wifi-led",
			args:     []string{"on"},
			expected: "Turning on WiFi LED",
			method:   "set_wifi_led",
			params:   []any{"on"},
		},
		{
			name:     "strip power price",
			family:   gomiio.FamilyPowerStrip,
			command:  "set-power-price",
			args:     []string{"120"},
			expected: "Setting power price to 120",
			method:   "set_power_price",
			params:   []any{120},
		},
		{
			name:     "strip realtime power",
			family:   gomiio.FamilyPowerStrip,
			command:  "set-realtime-power",
			args:     []string{"off"},
			expected: "Turning off real-time power measurement",
			method:   "set_rt_power",
			params:   []any{0},
		},
		{
			name:     "purifier buzzer",
			family:   gomiio.FamilyAirPurifier,
			command:  "set-buzzer",
			args:     []string{"off"},
			expected: "Turning off buzzer",
			method:   "set_buzzer",
			params:   []any{"off"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &recordingSender{}
			out, err := runCommand(t, sender, tt.family, tt.command, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
			require.Len(t, sender.calls, 1)
			assert.Equal(t, tt.method, sender.calls[0].method)
			assert.Equal(t, tt.params, sender.calls[0].params)
		})
	}
}

func TestCommandRejectionsMakeNoCalls(t *testing.T) {
	tests := []struct {
		name    string
		family  gomiio.Family
		command string
		args    []string
	}{
		{"unknown command", gomiio.FamilyACPartner, "explode", nil},
		{"wrong family", gomiio.FamilyPowerStrip, "learn", nil},
		{"missing argument", gomiio.FamilyACPartner, "send-ir-code", nil},
		{"extra argument", gomiio.FamilyACPartner, "status", []string{"x"}},
		{"bad slot", gomiio.FamilyACPartner, "learn", []string{"thirty"}},
		{"bad power", gomiio.FamilyACPartner, "send-configuration", []string{"010500978022222102", "maybe", "cool", "24", "auto", "off", "on"}},
		{"bad temperature", gomiio.FamilyACPartner, "send-configuration", []string{"010500978022222102", "on", "cool", "warm", "auto", "off", "on"}},
		{"short model", gomiio.FamilyACPartner, "send-configuration", []string{"0105", "on", "cool", "24", "auto", "off", "on"}},
		{"price out of range", gomiio.FamilyPowerStrip, "set-power-price", []string{"1000"}},
		{"bad power mode", gomiio.FamilyPowerStrip, "set-power-mode", []string{"turbo"}},
		{"bad switch", gomiio.FamilyPowerStrip, "set-wifi-led", []string{"sometimes"}},
		{"favorite level out of range", gomiio.FamilyAirPurifier, "set-favorite-level", []string{"17"}},
		{"bad purifier mode", gomiio.FamilyAirPurifier, "set-mode", []string{"turbo"}},
		{"bad humidity limit", gomiio.FamilyAirPurifier, "set-humidity-limit", []string{"45"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &recordingSender{}
			_, err := runCommand(t, sender, tt.family, tt.command, tt.args...)
			assert.Error(t, err)
			assert.Empty(t, sender.calls)
		})
	}
}

func TestCommandTransportErrorPassesThrough(t *testing.T) {
	boom := errors.New("bridge unreachable")
	sender := &recordingSender{err: boom}

	_, err := runCommand(t, sender, gomiio.FamilyACPartner, "learn-result")
	assert.ErrorIs(t, err, boom)
}

func TestStatusCommand(t *testing.T) {
	sender := &recordingSender{replies: map[string]any{"get_model_and_state": companionState}}

	out, err := runCommand(t, sender, gomiio.FamilyACPartner, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Target temperature: 25 °C")
	assert.Equal(t, "get_model_and_state", sender.calls[0].method)
}

func TestEveryCommandHasPrepare(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range commands {
		assert.NotNil(t, c.prepare, c.name)
		assert.False(t, seen[c.name], "duplicate command %s", c.name)
		seen[c.name] = true
	}
}

package gomiio

import (
	"context"
	"fmt"
)

type PowerMode string

const (
	PowerModeEco    PowerMode = "green"
	PowerModeNormal PowerMode = "normal"
)

var powerModeNames = map[PowerMode]string{
	PowerModeEco:    "Eco",
	PowerModeNormal: "Normal",
}

func (m PowerMode) String() string { return enumName(powerModeNames, m, string(m)) }

func (m PowerMode) Valid() bool {
	_, ok := powerModeNames[m]
	return ok
}

// ParsePowerMode accepts the member name (Eco, Normal) or its wire value (green, normal).
func ParsePowerMode(s string) (PowerMode, error) {
	if m := PowerMode(s); m.Valid() {
		return m, nil
	}
	return parseEnum(powerModeNames, "power mode", s)
}

const (
	minPowerPrice = 0
	maxPowerPrice = 999
)

var powerStripProperties = []string{
	"power", "temperature", "current", "mode",
	"power_consume_rate", "wifi_led", "power_price",
	"voltage", "power_factor", "elec_leakage",
}

// PowerStripStatus holds a status report of qmi.powerstrip.v1 / zimi.powerstrip.v2:
//
//	{'power': 'on', 'temperature': 48.7, 'current': 0.05, 'mode': None,
//	 'power_consume_rate': 4.09, 'wifi_led': 'on', 'power_price': 49}
type PowerStripStatus struct {
	props *Properties
}

// NewPowerStripStatus wraps the properties read by PowerStrip.Status.
func NewPowerStripStatus(props *Properties) *PowerStripStatus {
	return &PowerStripStatus{props: props}
}

func (s *PowerStripStatus) Power() Field[string]        { return s.props.Text("power") }
func (s *PowerStripStatus) IsOn() Field[bool]           { return s.props.OnOff("power") }
func (s *PowerStripStatus) Temperature() Field[float64] { return s.props.Float("temperature") }

// Current is reported in an unknown unit and voltage reference.
func (s *PowerStripStatus) Current() Field[float64] { return s.props.Float("current") }

// LoadPower is the current consumption in watts.
func (s *PowerStripStatus) LoadPower() Field[float64]   { return s.props.Float("power_consume_rate") }
func (s *PowerStripStatus) WifiLed() Field[bool]        { return s.props.OnOff("wifi_led") }
func (s *PowerStripStatus) PowerPrice() Field[int]      { return s.props.Int("power_price") }
func (s *PowerStripStatus) LeakageCurrent() Field[int]  { return s.props.Int("elec_leakage") }
func (s *PowerStripStatus) Voltage() Field[int]         { return s.props.Int("voltage") }
func (s *PowerStripStatus) PowerFactor() Field[float64] { return s.props.Float("power_factor") }

// Mode is green or normal.
func (s *PowerStripStatus) Mode() Field[PowerMode] {
	return translated("mode", s.props.Text("mode"), map[string]PowerMode{
		string(PowerModeEco):    PowerModeEco,
		string(PowerModeNormal): PowerModeNormal,
	})
}

func (s *PowerStripStatus) Fields() map[string]any {
	return map[string]any{
		"power":           s.Power(),
		"temperature":     s.Temperature(),
		"voltage":         s.Voltage(),
		"current":         s.Current(),
		"load_power":      s.LoadPower(),
		"power_factor":    s.PowerFactor(),
		"power_price":     s.PowerPrice(),
		"leakage_current": s.LeakageCurrent(),
		"mode":            mapField(s.Mode(), PowerMode.String),
		"wifi_led":        s.WifiLed(),
	}
}

func (s *PowerStripStatus) String() string {
	return fmt.Sprintf("<PowerStripStatus power=%s, temperature=%s, voltage=%s, "+
		"current=%s, load_power=%s, power_factor=%s, power_price=%s, "+
		"leakage_current=%s, mode=%s, wifi_led=%s>",
		s.Power(), s.Temperature(), s.Voltage(), s.Current(), s.LoadPower(),
		s.PowerFactor(), s.PowerPrice(), s.LeakageCurrent(), s.Mode(), s.WifiLed())
}

// PowerStrip represents a smart power strip
type PowerStrip struct {
	*Device
}

// NewPowerStrip creates a power strip sending through sender.
func NewPowerStrip(sender Sender, logger Logger) *PowerStrip {
	return &PowerStrip{Device: NewDevice(sender, logger)}
}

// Status requests every known property in one get_prop call.
func (p *PowerStrip) Status(ctx context.Context) (*PowerStripStatus, error) {
	props, err := p.getProperties(ctx, powerStripProperties)
	if err != nil {
		return nil, err
	}
	return NewPowerStripStatus(props), nil
}

func (p *PowerStrip) SetPowerMode(ctx context.Context, mode PowerMode) (any, error) {
	if !mode.Valid() {
		return nil, NewInvalidValueError("power mode", string(mode), "must be one of green, normal")
	}
	return p.Send(ctx, "set_power_mode", string(mode))
}

func (p *PowerStrip) SetWifiLed(ctx context.Context, on bool) (any, error) {
	return p.Send(ctx, "set_wifi_led", onOff(on))
}

// SetPowerPrice accepts a price between 0 and 999.
func (p *PowerStrip) SetPowerPrice(ctx context.Context, price int) (any, error) {
	if price < minPowerPrice || price > maxPowerPrice {
		return nil, NewInvalidValueError("power price", price,
			fmt.Sprintf("must be between %d and %d", minPowerPrice, maxPowerPrice))
	}
	return p.Send(ctx, "set_power_price", price)
}

// SetRealtimePower toggles real-time power measurement.
func (p *PowerStrip) SetRealtimePower(ctx context.Context, on bool) (any, error) {
	v := 0
	if on {
		v = 1
	}
	return p.Send(ctx, "set_rt_power", v)
}

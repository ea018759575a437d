package gomiio

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

type LedBrightness int

const (
	LedBrightnessBright LedBrightness = 0
	LedBrightnessDim    LedBrightness = 1
	LedBrightnessOff    LedBrightness = 2
)

var ledBrightnessNames = map[LedBrightness]string{
	LedBrightnessBright: "bright",
	LedBrightnessDim:    "dim",
	LedBrightnessOff:    "off",
}

func (b LedBrightness) String() string {
	return enumName(ledBrightnessNames, b, fmt.Sprint(int(b)))
}

func (b LedBrightness) Valid() bool {
	_, ok := ledBrightnessNames[b]
	return ok
}

// ParseLedBrightness accepts bright, dim or off.
func ParseLedBrightness(s string) (LedBrightness, error) {
	return parseEnum(ledBrightnessNames, "led brightness", s)
}

var (
	airPurifierModes = []string{"auto", "silent", "favorite", "medium", "high", "strong", "idle"}
	humidityLimits   = []int{40, 50, 60, 70, 80}

	airPurifierProperties = []string{
		"power", "aqi", "humidity", "temp_dec",
		"mode", "led", "led_b", "buzzer", "child_lock",
		"limit_hum", "trans_level", "bright",
		"favorite_level", "filter1_life", "act_det",
		"f1_hour_used", "use_time", "motor1_speed",
	}
)

const (
	minFavoriteLevel = 0
	maxFavoriteLevel = 16
)

// AirPurifierStatus holds a status report of the air purifier.
type AirPurifierStatus struct {
	props *Properties
}

// NewAirPurifierStatus wraps the properties read by AirPurifier.Status.
func NewAirPurifierStatus(props *Properties) *AirPurifierStatus {
	return &AirPurifierStatus{props: props}
}

func (s *AirPurifierStatus) Power() Field[string] { return s.props.Text("power") }
func (s *AirPurifierStatus) IsOn() Field[bool]    { return s.props.OnOff("power") }

// AQI is the air quality index in μg/m³.
func (s *AirPurifierStatus) AQI() Field[int]      { return s.props.Int("aqi") }
func (s *AirPurifierStatus) Humidity() Field[int] { return s.props.Int("humidity") }

// Temperature is reported in tenths of a degree.
func (s *AirPurifierStatus) Temperature() Field[float64] {
	return mapField(s.props.Float("temp_dec"), func(v float64) float64 { return v / 10.0 })
}

// Mode is one of auto, silent, favorite, medium, high, strong, idle.
func (s *AirPurifierStatus) Mode() Field[string] { return s.props.Text("mode") }
func (s *AirPurifierStatus) Led() Field[bool]    { return s.props.OnOff("led") }

func (s *AirPurifierStatus) LedBrightness() Field[LedBrightness] {
	return translated("led_b", s.props.Int("led_b"), map[int]LedBrightness{
		0: LedBrightnessBright,
		1: LedBrightnessDim,
		2: LedBrightnessOff,
	})
}

func (s *AirPurifierStatus) Buzzer() Field[bool] { return s.props.OnOff("buzzer") }

// ChildLock reads the child_lock property as on/off.
func (s *AirPurifierStatus) ChildLock() Field[bool]    { return s.props.OnOff("child_lock") }
func (s *AirPurifierStatus) HumidityLimit() Field[int] { return s.props.Int("limit_hum") }
func (s *AirPurifierStatus) TransLevel() Field[int]    { return s.props.Int("trans_level") }
func (s *AirPurifierStatus) Bright() Field[int]        { return s.props.Int("bright") }

// FavoriteLevel is used when the mode is favorite, between 0 and 16.
func (s *AirPurifierStatus) FavoriteLevel() Field[int]       { return s.props.Int("favorite_level") }
func (s *AirPurifierStatus) FilterLifeRemaining() Field[int] { return s.props.Int("filter1_life") }
func (s *AirPurifierStatus) ActDet() Field[bool]             { return s.props.OnOff("act_det") }
func (s *AirPurifierStatus) FilterHoursUsed() Field[int]     { return s.props.Int("f1_hour_used") }
func (s *AirPurifierStatus) UseTime() Field[int]             { return s.props.Int("use_time") }
func (s *AirPurifierStatus) MotorSpeed() Field[int]          { return s.props.Int("motor1_speed") }

func (s *AirPurifierStatus) Fields() map[string]any {
	return map[string]any{
		"power":                 s.Power(),
		"aqi":                   s.AQI(),
		"humidity":              s.Humidity(),
		"temperature":           s.Temperature(),
		"mode":                  s.Mode(),
		"led":                   s.Led(),
		"led_brightness":        mapField(s.LedBrightness(), LedBrightness.String),
		"buzzer":                s.Buzzer(),
		"child_lock":            s.ChildLock(),
		"humidity_limit":        s.HumidityLimit(),
		"trans_level":           s.TransLevel(),
		"bright":                s.Bright(),
		"favorite_level":        s.FavoriteLevel(),
		"filter_life_remaining": s.FilterLifeRemaining(),
		"act_det":               s.ActDet(),
		"filter_hours_used":     s.FilterHoursUsed(),
		"use_time":              s.UseTime(),
		"motor_speed":           s.MotorSpeed(),
	}
}

func (s *AirPurifierStatus) String() string {
	return fmt.Sprintf("<AirPurifierStatus power=%s, aqi=%s, temperature=%s, "+
		"humidity=%s, mode=%s, led=%s, led_brightness=%s, buzzer=%s, "+
		"child_lock=%s, humidity_limit=%s, trans_level=%s, bright=%s, "+
		"favorite_level=%s, filter_life_remaining=%s, act_det=%s, "+
		"filter_hours_used=%s, use_time=%s, motor_speed=%s>",
		s.Power(), s.AQI(), s.Temperature(), s.Humidity(), s.Mode(), s.Led(),
		s.LedBrightness(), s.Buzzer(), s.ChildLock(), s.HumidityLimit(),
		s.TransLevel(), s.Bright(), s.FavoriteLevel(), s.FilterLifeRemaining(),
		s.ActDet(), s.FilterHoursUsed(), s.UseTime(), s.MotorSpeed())
}

// AirPurifier represents a Xiaomi air purifier
type AirPurifier struct {
	*Device
}

// NewAirPurifier creates an air purifier sending through sender.
func NewAirPurifier(sender Sender, logger Logger) *AirPurifier {
	return &AirPurifier{Device: NewDevice(sender, logger)}
}

// Status requests every known property in one get_prop call.
func (a *AirPurifier) Status(ctx context.Context) (*AirPurifierStatus, error) {
	props, err := a.getProperties(ctx, airPurifierProperties)
	if err != nil {
		return nil, err
	}
	return NewAirPurifierStatus(props), nil
}

// SetMode selects one of the purifier operating modes.
func (a *AirPurifier) SetMode(ctx context.Context, mode string) (any, error) {
	if !slices.Contains(airPurifierModes, mode) {
		return nil, NewInvalidValueError("mode", mode, "must be one of "+strings.Join(airPurifierModes, ", "))
	}
	return a.Send(ctx, "set_mode", mode)
}

// SetFavoriteLevel sets the level used when the mode is favorite.
func (a *AirPurifier) SetFavoriteLevel(ctx context.Context, level int) (any, error) {
	if level < minFavoriteLevel || level > maxFavoriteLevel {
		return nil, NewInvalidValueError("favorite level", level,
			fmt.Sprintf("must be between %d and %d", minFavoriteLevel, maxFavoriteLevel))
	}
	return a.Send(ctx, "favorite_level", level)
}

func (a *AirPurifier) SetLedBrightness(ctx context.Context, brightness LedBrightness) (any, error) {
	if !brightness.Valid() {
		return nil, NewInvalidValueError("led brightness", int(brightness), "must be one of bright, dim, off")
	}
	return a.Send(ctx, "set_led_b", int(brightness))
}

func (a *AirPurifier) SetLed(ctx context.Context, on bool) (any, error) {
	return a.Send(ctx, "set_led", onOff(on))
}

func (a *AirPurifier) SetBuzzer(ctx context.Context, on bool) (any, error) {
	return a.Send(ctx, "set_buzzer", onOff(on))
}

// SetHumidityLimit accepts 40, 50, 60, 70 or 80 percent.
func (a *AirPurifier) SetHumidityLimit(ctx context.Context, limit int) (any, error) {
	if !slices.Contains(humidityLimits, limit) {
		return nil, NewInvalidValueError("humidity limit", limit, "must be one of 40, 50, 60, 70, 80")
	}
	return a.Send(ctx, "set_limit_hum", limit)
}

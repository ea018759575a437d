package main

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/jattkaim/gomiio"
)

// action runs a prepared command. Argument syntax is checked before an
// action exists; domain checks happen in gomiio before its first RPC.
type action func(ctx context.Context, c *gomiio.MiioClient) (string, error)

type command struct {
	name     string
	args     string
	summary  string
	families []gomiio.Family
	prepare  func(args []string, family gomiio.Family) (action, error)
}

var (
	acOnly       = []gomiio.Family{gomiio.FamilyACPartner}
	stripOnly    = []gomiio.Family{gomiio.FamilyPowerStrip}
	purifierOnly = []gomiio.Family{gomiio.FamilyAirPurifier}
)

var commands = []command{
	{name: "status", summary: "show device status", prepare: prepareStatus},
	{name: "on", summary: "power on", prepare: preparePower(true)},
	{name: "off", summary: "power off", prepare: preparePower(false)},

	{name: "learn", args: "[slot]", summary: "learn an infrared command", families: acOnly, prepare: prepareLearn},
	{name: "learn-result", summary: "read the learned command", families: acOnly, prepare: prepareLearnResult},
	{name: "learn-stop", args: "[slot]", summary: "stop learning an infrared command", families: acOnly, prepare: prepareLearnStop},
	{name: "send-ir-code", args: "<code>", summary: "play a captured infrared command", families: acOnly, prepare: prepareSendIRCode},
	{name: "send-command", args: "<command>", summary: "send a raw command to the air conditioner", families: acOnly, prepare: prepareSendCommand},
	{
		name:     "send-configuration",
		args:     "<model> <power> <mode> <temperature> <fan-speed> <swing-mode> <led>",
		summary:  "send a configuration to the air conditioner",
		families: acOnly,
		prepare:  prepareSendConfiguration,
	},

	{name: "set-power-mode", args: "<eco|normal>", summary: "set the power mode", families: stripOnly, prepare: prepareSetPowerMode},
	{name: "set-wifi-led", args: "<on|off>", summary: "set the WiFi LED", families: stripOnly, prepare: prepareSetWifiLed},
	{name: "set-power-price", args: "<price>", summary: "set the power price (0-999)", families: stripOnly, prepare: prepareSetPowerPrice},
	{name: "set-realtime-power", args: "<on|off>", summary: "set real-time power measurement", families: stripOnly, prepare: prepareSetRealtimePower},

	{name: "set-mode", args: "<mode>", summary: "set the purifier mode", families: purifierOnly, prepare: prepareSetMode},
	{name: "set-favorite-level", args: "<0-16>", summary: "set the favorite level", families: purifierOnly, prepare: prepareSetFavoriteLevel},
	{name: "set-led-brightness", args: "<bright|dim|off>", summary: "set the LED brightness", families: purifierOnly, prepare: prepareSetLedBrightness},
	{name: "set-led", args: "<on|off>", summary: "set the LED", families: purifierOnly, prepare: prepareSetLed},
	{name: "set-buzzer", args: "<on|off>", summary: "set the buzzer", families: purifierOnly, prepare: prepareSetBuzzer},
	{name: "set-humidity-limit", args: "<40|50|60|70|80>", summary: "set the humidity limit", families: purifierOnly, prepare: prepareSetHumidityLimit},
}

func lookupCommand(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func (c command) supports(family gomiio.Family) bool {
	return c.families == nil || slices.Contains(c.families, family)
}

// prepareCommand resolves name and its arguments into an action for family.
func prepareCommand(name string, args []string, family gomiio.Family) (action, error) {
	c, ok := lookupCommand(name)
	if !ok {
		return nil, fmt.Errorf("unknown command %q", name)
	}
	if !c.supports(family) {
		return nil, fmt.Errorf("command %q is not available for %s devices", name, family)
	}
	return c.prepare(args, family)
}

func prepareStatus(args []string, family gomiio.Family) (action, error) {
	if err := argCount(args, 0); err != nil {
		return nil, err
	}
	return func(ctx context.Context, c *gomiio.MiioClient) (string, error) {
		status, err := c.StatusOf(ctx, family)
		if err != nil {
			return "", err
		}
		return renderStatus(status), nil
	}, nil
}

func preparePower(on bool) func([]string, gomiio.Family) (action, error) {
	return func(args []string, family gomiio.Family) (action, error) {
		if err := argCount(args, 0); err != nil {
			return nil, err
		}
		return func(ctx context.Context, c *gomiio.MiioClient) (string, error) {
			device, err := c.Device(family)
			if err != nil {
				return "", err
			}
			if on {
				_, err = device.On(ctx)
			} else {
				_, err = device.Off(ctx)
			}
			if err != nil {
				return "", err
			}
			return powerMessage(family, on), nil
		}, nil
	}
}

func powerMessage(family gomiio.Family, on bool) string {
	state := onOffWord(on)
	if family == gomiio.FamilyACPartner {
		return "Powering the air condition " + state
	}
	return "Powering " + state
}

func prepareLearn(args []string, _ gomiio.Family) (action, error) {
	slot, err := slotArg(args)
	if err != nil {
		return nil, err
	}
	return func(ctx context.Context, c *gomiio.MiioClient) (string, error) {
		if _, err := c.ACPartner().Learn(ctx, slot); err != nil {
			return "", err
		}
		return fmt.Sprintf("Learning infrared command into storage slot %d", slot), nil
	}, nil
}

func prepareLearnResult(args []string, _ gomiio.Family) (action, error) {
	if err := argCount(args, 0); err != nil {
		return nil, err
	}
	return func(ctx context.Context, c *gomiio.MiioClient) (string, error) {
		result, err := c.ACPartner().LearnResult(ctx)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Reading learned infrared commands\n%v", result), nil
	}, nil
}

func prepareLearnStop(args []string, _ gomiio.Family) (action, error) {
	slot, err := slotArg(args)
	if err != nil {
		return nil, err
	}
	return func(ctx context.Context, c *gomiio.MiioClient) (string, error) {
		if _, err := c.ACPartner().LearnStop(ctx, slot); err != nil {
			return "", err
		}
		return fmt.Sprintf("Learning infrared command into storage slot %d stopped", slot), nil
	}, nil
}

func prepareSendIRCode(args []string, _ gomiio.Family) (action, error) {
	if err := argCount(args, 1); err != nil {
		return nil, err
	}
	return func(ctx context.Context, c *gomiio.MiioClient) (string, error) {
		if _, err := c.ACPartner().SendIRCode(ctx, args[0]); err != nil {
			return "", err
		}
		return "Sending the supplied infrared command", nil
	}, nil
}

func prepareSendCommand(args []string, _ gomiio.Family) (action, error) {
	if err := argCount(args, 1); err != nil {
		return nil, err
	}
	return func(ctx context.Context, c *gomiio.MiioClient) (string, error) {
		if _, err := c.ACPartner().SendCommand(ctx, args[0]); err != nil {
			return "", err
		}
		return "Sending a command to the air conditioner", nil
	}, nil
}

func prepareSendConfiguration(args []string, _ gomiio.Family) (action, error) {
	if err := argCount(args, 7); err != nil {
		return nil, err
	}
	cfg, err := parseConfiguration(args[1], args[2], args[3], args[4], args[5], args[6])
	if err != nil {
		return nil, err
	}
	model := args[0]
	return func(ctx context.Context, c *gomiio.MiioClient) (string, error) {
		if _, err := c.SendConfiguration(ctx, model, cfg); err != nil {
			return "", err
		}
		return "Sending a configuration to the air conditioner", nil
	}, nil
}

func parseConfiguration(power, mode, temperature, fanSpeed, swingMode, led string) (gomiio.Configuration, error) {
	var cfg gomiio.Configuration
	var err error

	if cfg.Power, err = gomiio.ParsePower(power); err != nil {
		return cfg, err
	}
	if cfg.Mode, err = gomiio.ParseOperationMode(mode); err != nil {
		return cfg, err
	}
	if cfg.Temperature, err = strconv.Atoi(temperature); err != nil {
		return cfg, gomiio.NewInvalidValueError("temperature", temperature, "must be an integer")
	}
	if cfg.FanSpeed, err = gomiio.ParseFanSpeed(fanSpeed); err != nil {
		return cfg, err
	}
	if cfg.SwingMode, err = gomiio.ParseSwingMode(swingMode); err != nil {
		return cfg, err
	}
	if cfg.Led, err = gomiio.ParseLed(led); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func prepareSetPowerMode(args []string, _ gomiio.Family) (action, error) {
	if err := argCount(args, 1); err != nil {
		return nil, err
	}
	mode, err := gomiio.ParsePowerMode(args[0])
	if err != nil {
		return nil, err
	}
	return func(ctx context.Context, c *gomiio.MiioClient) (string, error) {
		if _, err := c.PowerStrip().SetPowerMode(ctx, mode); err != nil {
			return "", err
		}
		return fmt.Sprintf("Setting mode to %s", mode), nil
	}, nil
}

func prepareSetWifiLed(args []string, _ gomiio.Family) (action, error) {
	on, err := switchArg(args)
	if err != nil {
		return nil, err
	}
	return func(ctx context.Context, c *gomiio.MiioClient) (string, error) {
		if _, err := c.PowerStrip().SetWifiLed(ctx, on); err != nil {
			return "", err
		}
		return fmt.Sprintf("Turning %s WiFi LED", onOffWord(on)), nil
	}, nil
}

func prepareSetPowerPrice(args []string, _ gomiio.Family) (action, error) {
	price, err := intArg(args, "price")
	if err != nil {
		return nil, err
	}
	return func(ctx context.Context, c *gomiio.MiioClient) (string, error) {
		if _, err := c.PowerStrip().SetPowerPrice(ctx, price); err != nil {
			return "", err
		}
		return fmt.Sprintf("Setting power price to %d", price), nil
	}, nil
}

func prepareSetRealtimePower(args []string, _ gomiio.Family) (action, error) {
	on, err := switchArg(args)
	if err != nil {
		return nil, err
	}
	return func(ctx context.Context, c *gomiio.MiioClient) (string, error) {
		if _, err := c.PowerStrip().SetRealtimePower(ctx, on); err != nil {
			return "", err
		}
		return fmt.Sprintf("Turning %s real-time power measurement", onOffWord(on)), nil
	}, nil
}

func prepareSetMode(args []string, _ gomiio.Family) (action, error) {
	if err := argCount(args, 1); err != nil {
		return nil, err
	}
	mode := strings.ToLower(args[0])
	return func(ctx context.Context, c *gomiio.MiioClient) (string, error) {
		if _, err := c.AirPurifier().SetMode(ctx, mode); err != nil {
			return "", err
		}
		return fmt.Sprintf("Setting mode to %s", mode), nil
	}, nil
}

func prepareSetFavoriteLevel(args []string, _ gomiio.Family) (action, error) {
	level, err := intArg(args, "favorite level")
	if err != nil {
		return nil, err
	}
	return func(ctx context.Context, c *gomiio.MiioClient) (string, error) {
		if _, err := c.AirPurifier().SetFavoriteLevel(ctx, level); err != nil {
			return "", err
		}
		return fmt.Sprintf("Setting favorite level to %d", level), nil
	}, nil
}

func prepareSetLedBrightness(args []string, _ gomiio.Family) (action, error) {
	if err := argCount(args, 1); err != nil {
		return nil, err
	}
	brightness, err := gomiio.ParseLedBrightness(args[0])
	if err != nil {
		return nil, err
	}
	return func(ctx context.Context, c *gomiio.MiioClient) (string, error) {
		if _, err := c.AirPurifier().SetLedBrightness(ctx, brightness); err != nil {
			return "", err
		}
		return fmt.Sprintf("Setting LED brightness to %s", brightness), nil
	}, nil
}

func prepareSetLed(args []string, _ gomiio.Family) (action, error) {
	on, err := switchArg(args)
	if err != nil {
		return nil, err
	}
	return func(ctx context.Context, c *gomiio.MiioClient) (string, error) {
		if _, err := c.AirPurifier().SetLed(ctx, on); err != nil {
			return "", err
		}
		return fmt.Sprintf("Turning %s LED", onOffWord(on)), nil
	}, nil
}

func prepareSetBuzzer(args []string, _ gomiio.Family) (action, error) {
	on, err := switchArg(args)
	if err != nil {
		return nil, err
	}
	return func(ctx context.Context, c *gomiio.MiioClient) (string, error) {
		if _, err := c.AirPurifier().SetBuzzer(ctx, on); err != nil {
			return "", err
		}
		return fmt.Sprintf("Turning %s buzzer", onOffWord(on)), nil
	}, nil
}

func prepareSetHumidityLimit(args []string, _ gomiio.Family) (action, error) {
	limit, err := intArg(args, "humidity limit")
	if err != nil {
		return nil, err
	}
	return func(ctx context.Context, c *gomiio.MiioClient) (string, error) {
		if _, err := c.AirPurifier().SetHumidityLimit(ctx, limit); err != nil {
			return "", err
		}
		return fmt.Sprintf("Setting humidity limit to %d", limit), nil
	}, nil
}

func argCount(args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("expected %d argument(s), got %d", n, len(args))
	}
	return nil
}

func slotArg(args []string) (int, error) {
	if len(args) == 0 {
		return gomiio.DefaultStorageSlot, nil
	}
	return intArg(args, "slot")
}

func intArg(args []string, name string) (int, error) {
	if err := argCount(args, 1); err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, gomiio.NewInvalidValueError(name, args[0], "must be an integer")
	}
	return v, nil
}

// switchArg accepts on/off as well as anything strconv.ParseBool understands.
func switchArg(args []string) (bool, error) {
	if err := argCount(args, 1); err != nil {
		return false, err
	}
	switch strings.ToLower(args[0]) {
	case "on":
		return true, nil
	case "off":
		return false, nil
	}
	v, err := strconv.ParseBool(args[0])
	if err != nil {
		return false, gomiio.NewInvalidValueError("switch", args[0], "must be on or off")
	}
	return v, nil
}

func onOffWord(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

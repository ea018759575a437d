package gomiio

import (
	"context"
	"log/slog"
)

type MiioClient struct {
	sender Sender
	logger Logger
}

// NewClient creates a new client with a custom logger (silent by default)
func NewClient(sender Sender, logger Logger) *MiioClient {
	if logger == nil {
		logger = NoOpLogger{}
	}
	return &MiioClient{
		sender: sender,
		logger: logger,
	}
}

// NewClientWithSlog creates a client with slog
func NewClientWithSlog(sender Sender, slogger *slog.Logger) *MiioClient {
	if slogger == nil {
		slogger = slog.Default()
	}
	return NewClient(sender, NewSlogAdapter(slogger))
}

func (c *MiioClient) Logger() Logger {
	return c.logger
}

// ACPartner returns the air conditioning companion view of the device.
func (c *MiioClient) ACPartner() *AirConditioningCompanion {
	return NewAirConditioningCompanion(c.sender, c.logger)
}

func (c *MiioClient) PowerStrip() *PowerStrip {
	return NewPowerStrip(c.sender, c.logger)
}

func (c *MiioClient) AirPurifier() *AirPurifier {
	return NewAirPurifier(c.sender, c.logger)
}

// Device returns the appliance for family.
func (c *MiioClient) Device(family Family) (Appliance, error) {
	return CreateDevice(family, c.sender, c.logger)
}

// StatusOf reads a status report through the decoder of family.
func (c *MiioClient) StatusOf(ctx context.Context, family Family) (Status, error) {
	device, err := c.Device(family)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("Retrieving device status", "family", family)
	status, err := device.ReadStatus(ctx)
	if err != nil {
		c.logger.Error("Failed to retrieve device status", "family", family, "error", err)
		return nil, err
	}
	return status, nil
}

// SendConfiguration validates and sends cfg to an AC companion.
func (c *MiioClient) SendConfiguration(ctx context.Context, model string, cfg Configuration) (string, error) {
	m := ModelIdentifier(model)
	if _, err := c.ACPartner().SendConfiguration(ctx, m, cfg); err != nil {
		return "", err
	}
	return Encode(m, cfg), nil
}

// GetDeviceStatus reads the status of a device behind sender with a silent client.
func GetDeviceStatus(ctx context.Context, sender Sender, family Family) (map[string]any, error) {
	client := NewClient(sender, nil) // silent by default
	status, err := client.StatusOf(ctx, family)
	if err != nil {
		return nil, err
	}
	return status.Fields(), nil
}

package gomiio

import (
	"context"
	"fmt"
	"strings"
)

// Family selects the device implementation, and with it the status decoder.
type Family string

const (
	FamilyACPartner   Family = "acpartner"
	FamilyPowerStrip  Family = "powerstrip"
	FamilyAirPurifier Family = "airpurifier"
)

var families = []Family{FamilyACPartner, FamilyPowerStrip, FamilyAirPurifier}

// ParseFamily resolves a device family name, ignoring case.
func ParseFamily(s string) (Family, error) {
	f := Family(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range families {
		if f == known {
			return f, nil
		}
	}
	return "", NewInvalidValueError("device family", s, "must be one of acpartner, powerstrip, airpurifier")
}

// Appliance is the surface shared by every device family
type Appliance interface {
	On(ctx context.Context) (any, error)
	Off(ctx context.Context) (any, error)
	ReadStatus(ctx context.Context) (Status, error)
}

func (a *AirConditioningCompanion) ReadStatus(ctx context.Context) (Status, error) {
	s, err := a.Status(ctx)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (p *PowerStrip) ReadStatus(ctx context.Context) (Status, error) {
	s, err := p.Status(ctx)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (a *AirPurifier) ReadStatus(ctx context.Context) (Status, error) {
	s, err := a.Status(ctx)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// CreateDevice creates the device implementation for family
func CreateDevice(family Family, sender Sender, logger Logger) (Appliance, error) {
	if logger == nil {
		logger = NoOpLogger{}
	}

	switch family {
	case FamilyACPartner:
		logger.Debug("Creating AC companion device")
		return NewAirConditioningCompanion(sender, logger), nil
	case FamilyPowerStrip:
		logger.Debug("Creating power strip device")
		return NewPowerStrip(sender, logger), nil
	case FamilyAirPurifier:
		logger.Debug("Creating air purifier device")
		return NewAirPurifier(sender, logger), nil
	}
	return nil, fmt.Errorf("error creating device, family %q is not supported", family)
}

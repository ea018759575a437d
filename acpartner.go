package gomiio

import "context"

// DefaultStorageSlot is the IR learning slot used when none is given.
const DefaultStorageSlot = 30

// AirConditioningCompanion represents a Xiaomi AC companion (lumi.acpartner)
type AirConditioningCompanion struct {
	*Device
}

// NewAirConditioningCompanion creates a companion device sending through sender.
func NewAirConditioningCompanion(sender Sender, logger Logger) *AirConditioningCompanion {
	return &AirConditioningCompanion{Device: NewDevice(sender, logger)}
}

// Status reads get_model_and_state and decodes it.
func (a *AirConditioningCompanion) Status(ctx context.Context) (*AirConditioningCompanionStatus, error) {
	result, err := a.Send(ctx, "get_model_and_state")
	if err != nil {
		return nil, err
	}
	data, err := parseStringList(result)
	if err != nil {
		return nil, err
	}
	return NewAirConditioningCompanionStatus(data), nil
}

// Learn starts learning an infrared command into slot.
func (a *AirConditioningCompanion) Learn(ctx context.Context, slot int) (any, error) {
	return a.Send(ctx, "start_ir_learn", slot)
}

// LearnResult reads the most recently learned infrared command.
func (a *AirConditioningCompanion) LearnResult(ctx context.Context) (any, error) {
	return a.Send(ctx, "get_ir_learn_result")
}

// LearnStop ends learning into the given storage slot.
func (a *AirConditioningCompanion) LearnStop(ctx context.Context, slot int) (any, error) {
	return a.Send(ctx, "end_ir_learn", slot)
}

// SendIRCode plays a captured infrared command.
func (a *AirConditioningCompanion) SendIRCode(ctx context.Context, code string) (any, error) {
	return a.Send(ctx, "send_ir_code", code)
}

// SendCommand sends a raw command to the air conditioner.
func (a *AirConditioningCompanion) SendCommand(ctx context.Context, command string) (any, error) {
	return a.Send(ctx, "send_cmd", command)
}

// SendConfiguration encodes cfg for model and sends it. Invalid input is
// rejected before anything goes over the wire.
func (a *AirConditioningCompanion) SendConfiguration(ctx context.Context, model ModelIdentifier, cfg Configuration) (any, error) {
	if err := model.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	command := Encode(model, cfg)
	a.Logger.Info("Sending configuration", "model", string(model),
		"template", LookupTemplate(model.Prefix()).DeviceType, "command", command)
	return a.SendCommand(ctx, command)
}

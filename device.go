package gomiio

import "context"

// Sender performs a single miIO remote procedure call. Discovery, the
// handshake and encryption all live behind it.
type Sender interface {
	Send(ctx context.Context, method string, params []any) (any, error)
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, method string, params []any) (any, error)

func (f SenderFunc) Send(ctx context.Context, method string, params []any) (any, error) {
	return f(ctx, method, params)
}

// Status is a decoded status report of any device family.
type Status interface {
	String() string
	Fields() map[string]any
}

// Device provides common functionality for all miIO devices
type Device struct {
	Sender Sender
	Logger Logger
}

// NewDevice creates the base device. A nil logger disables logging.
func NewDevice(sender Sender, logger Logger) *Device {
	if logger == nil {
		logger = NoOpLogger{}
	}
	return &Device{
		Sender: sender,
		Logger: logger,
	}
}

// Send forwards the call; transport errors are returned unchanged.
func (d *Device) Send(ctx context.Context, method string, params ...any) (any, error) {
	if params == nil {
		params = []any{}
	}
	d.Logger.Debug("Sending command", "method", method, "params", params)
	result, err := d.Sender.Send(ctx, method, params)
	if err != nil {
		d.Logger.Error("Command failed", "method", method, "error", err)
		return nil, err
	}
	d.Logger.Debug("Command acknowledged", "method", method, "result", result)
	return result, nil
}

func (d *Device) On(ctx context.Context) (any, error) {
	return d.Send(ctx, "set_power", "on")
}

func (d *Device) Off(ctx context.Context) (any, error) {
	return d.Send(ctx, "set_power", "off")
}

// getProperties requests names with get_prop and zips the reply.
func (d *Device) getProperties(ctx context.Context, names []string) (*Properties, error) {
	params := make([]any, len(names))
	for i, n := range names {
		params[i] = n
	}
	result, err := d.Send(ctx, "get_prop", params...)
	if err != nil {
		return nil, err
	}
	values, err := parseValueList(result)
	if err != nil {
		return nil, err
	}
	if len(values) != len(names) {
		d.Logger.Debug("Count of requested properties does not match the count of received values",
			"requested", len(names), "received", len(values))
	}
	return NewProperties(names, values), nil
}

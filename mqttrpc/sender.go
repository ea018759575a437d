// Package mqttrpc carries miIO calls over an MQTT bridge. The bridge owns
// discovery, the handshake and encryption; this side only publishes
// requests and matches responses by id.
package mqttrpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"github.com/jattkaim/gomiio"
)

const (
	DefaultTopicPrefix = "miio"
	DefaultTimeout     = 5 * time.Second
)

var ErrClosed = errors.New("mqttrpc: sender closed")

// PubSub is the part of mqtt.Client the sender uses.
type PubSub interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
	Subscribe(topic string, qos byte, callback mqtt.MessageHandler) mqtt.Token
	Unsubscribe(topics ...string) mqtt.Token
}

type Config struct {
	DeviceID    string
	TopicPrefix string
	QoS         byte
	Timeout     time.Duration
	Logger      gomiio.Logger
}

type request struct {
	ID     string `json:"id"`
	Method string `json:"method"`
	Params []any  `json:"params"`
}

type response struct {
	ID     string          `json:"id"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  *RemoteError    `json:"error,omitempty"`
}

// RemoteError is an error reported by the bridge or the device.
type RemoteError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote error %d: %s", e.Code, e.Message)
}

// Sender implements gomiio.Sender. It is safe for concurrent use.
type Sender struct {
	client        PubSub
	requestTopic  string
	responseTopic string
	qos           byte
	timeout       time.Duration
	logger        gomiio.Logger
	newID         func() string

	mu      sync.Mutex
	pending map[string]chan response
	closed  bool
}

// RequestTopic is where calls for deviceID are published.
func RequestTopic(prefix, deviceID string) string {
	return fmt.Sprintf("%s/%s/rpc/request", prefix, deviceID)
}

func ResponseTopic(prefix, deviceID string) string {
	return fmt.Sprintf("%s/%s/rpc/response", prefix, deviceID)
}

// New subscribes to the response topic of cfg.DeviceID and returns a ready sender.
func New(client PubSub, cfg Config) (*Sender, error) {
	if cfg.DeviceID == "" {
		return nil, gomiio.NewInvalidValueError("device id", cfg.DeviceID, "must not be empty")
	}
	if cfg.TopicPrefix == "" {
		cfg.TopicPrefix = DefaultTopicPrefix
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = gomiio.NoOpLogger{}
	}

	s := &Sender{
		client:        client,
		requestTopic:  RequestTopic(cfg.TopicPrefix, cfg.DeviceID),
		responseTopic: ResponseTopic(cfg.TopicPrefix, cfg.DeviceID),
		qos:           cfg.QoS,
		timeout:       cfg.Timeout,
		logger:        cfg.Logger,
		newID:         func() string { return uuid.NewString() },
		pending:       make(map[string]chan response),
	}

	if err := s.wait(client.Subscribe(s.responseTopic, s.qos, s.handle)); err != nil {
		return nil, fmt.Errorf("subscribe %s: %w", s.responseTopic, err)
	}
	s.logger.Debug("Subscribed to RPC responses", "topic", s.responseTopic)
	return s, nil
}

// Send publishes one call and waits for its response, the context
// deadline or the configured timeout, whichever comes first.
func (s *Sender) Send(ctx context.Context, method string, params []any) (any, error) {
	if params == nil {
		params = []any{}
	}
	req := request{ID: s.newID(), Method: method, Params: params}
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	ch := make(chan response, 1)
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrClosed
	}
	s.pending[req.ID] = ch
	s.mu.Unlock()
	defer s.forget(req.ID)

	s.logger.Debug("Publishing RPC request", "topic", s.requestTopic, "id", req.ID, "method", method)
	if err := s.wait(s.client.Publish(s.requestTopic, s.qos, false, payload)); err != nil {
		return nil, fmt.Errorf("publish %s: %w", method, err)
	}

	timer := time.NewTimer(s.timeout)
	defer timer.Stop()

	select {
	case resp, ok := <-ch:
		if !ok {
			return nil, ErrClosed
		}
		if resp.Error != nil {
			return nil, resp.Error
		}
		return decodeResult(method, resp.Result)
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
		return nil, fmt.Errorf("%s: no response within %s", method, s.timeout)
	}
}

// Close unsubscribes and fails every call still waiting.
func (s *Sender) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	for id, ch := range s.pending {
		close(ch)
		delete(s.pending, id)
	}
	s.mu.Unlock()

	return s.wait(s.client.Unsubscribe(s.responseTopic))
}

func (s *Sender) handle(_ mqtt.Client, msg mqtt.Message) {
	var resp response
	if err := json.Unmarshal(msg.Payload(), &resp); err != nil {
		s.logger.Warn("Dropping malformed RPC response", "topic", msg.Topic(), "error", err)
		return
	}

	s.mu.Lock()
	ch, exists := s.pending[resp.ID]
	if exists {
		delete(s.pending, resp.ID)
	}
	s.mu.Unlock()

	if !exists {
		s.logger.Debug("Dropping RPC response with unknown id", "id", resp.ID)
		return
	}
	ch <- resp
}

func (s *Sender) forget(id string) {
	s.mu.Lock()
	delete(s.pending, id)
	s.mu.Unlock()
}

func (s *Sender) wait(t mqtt.Token) error {
	if !t.WaitTimeout(s.timeout) {
		return fmt.Errorf("timed out after %s", s.timeout)
	}
	return t.Error()
}

func decodeResult(method string, raw json.RawMessage) (any, error) {
	if len(raw) == 0 {
		return nil, gomiio.NewDeviceError(method+": response carries neither result nor error", nil)
	}
	var result any
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, gomiio.NewParseError("decode RPC result", err)
	}
	return result, nil
}

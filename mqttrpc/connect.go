package mqttrpc

import (
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

type BrokerConfig struct {
	URL      string
	Username string
	Password string
	ClientID string
}

// Connect opens a paho client to the bridge broker.
func Connect(cfg BrokerConfig, timeout time.Duration) (mqtt.Client, error) {
	if cfg.ClientID == "" {
		cfg.ClientID = "gomiio_rpc_client"
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	co := mqtt.NewClientOptions()
	co.AddBroker(cfg.URL)
	co.SetClientID(cfg.ClientID)
	co.SetUsername(cfg.Username)
	co.SetPassword(cfg.Password)
	co.SetConnectTimeout(timeout)
	co.SetAutoReconnect(true)

	cl := mqtt.NewClient(co)
	t := cl.Connect()
	if !t.WaitTimeout(timeout) {
		return nil, fmt.Errorf("connect %s: timed out after %s", cfg.URL, timeout)
	}
	if err := t.Error(); err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.URL, err)
	}
	return cl, nil
}

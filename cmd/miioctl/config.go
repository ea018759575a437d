package main

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jattkaim/gomiio/mqttrpc"
)

type settings struct {
	DeviceID    string
	Family      string
	Broker      string
	Username    string
	Password    string
	TopicPrefix string
	Timeout     time.Duration
	LogLevel    string
	HTTPAddr    string
}

func newFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("miioctl", pflag.ContinueOnError)
	flags.SetInterspersed(false)
	flags.StringP("config", "c", "", "path to config file (default ./miioctl.yaml)")
	flags.StringP("device", "d", "", "device id on the MQTT bridge")
	flags.StringP("family", "f", "", "device family: acpartner, powerstrip, airpurifier")
	flags.String("broker", "", "MQTT broker URL")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.Duration("timeout", 0, "RPC timeout")
	flags.String("http-addr", "", "listen address for serve")
	return flags
}

// flagKeys maps flags onto configuration keys.
var flagKeys = map[string]string{
	"device":    "device.id",
	"family":    "device.family",
	"broker":    "mqtt.broker",
	"log-level": "log.level",
	"timeout":   "rpc.timeout",
	"http-addr": "http.addr",
}

func loadSettings(flags *pflag.FlagSet) (*settings, error) {
	v := viper.New()

	v.SetDefault("device.family", "acpartner")
	v.SetDefault("mqtt.broker", "tcp://127.0.0.1:1883")
	v.SetDefault("mqtt.topic_prefix", mqttrpc.DefaultTopicPrefix)
	v.SetDefault("rpc.timeout", mqttrpc.DefaultTimeout)
	v.SetDefault("log.level", "info")
	v.SetDefault("http.addr", ":8080")

	v.SetEnvPrefix("MIIOCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for flag, key := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return nil, err
		}
	}

	if path, _ := flags.GetString("config"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("miioctl")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/miioctl")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	return &settings{
		DeviceID:    v.GetString("device.id"),
		Family:      v.GetString("device.family"),
		Broker:      v.GetString("mqtt.broker"),
		Username:    v.GetString("mqtt.username"),
		Password:    v.GetString("mqtt.password"),
		TopicPrefix: v.GetString("mqtt.topic_prefix"),
		Timeout:     v.GetDuration("rpc.timeout"),
		LogLevel:    v.GetString("log.level"),
		HTTPAddr:    v.GetString("http.addr"),
	}, nil
}

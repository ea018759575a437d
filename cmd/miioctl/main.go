// Command miioctl controls miIO appliances through an MQTT bridge.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/gin-gonic/gin"
	"github.com/spf13/pflag"

	"github.com/jattkaim/gomiio"
	"github.com/jattkaim/gomiio/internal/logger"
	"github.com/jattkaim/gomiio/mqttrpc"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2

	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 10 * time.Second
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := newFlagSet()
	flags.SetOutput(stderr)
	flags.Usage = func() { usage(stderr, flags) }

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	rest := flags.Args()
	if len(rest) == 0 {
		usage(stderr, flags)
		return exitUsage
	}

	cfg, err := loadSettings(flags)
	if err != nil {
		fmt.Fprintf(stderr, "error reading config: %v\n", err)
		return exitError
	}
	family, err := gomiio.ParseFamily(cfg.Family)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	log := logger.NewWithWriter(stderr, cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sender := newLazySender(cfg, log.Library())
	defer func() {
		if err := sender.Close(); err != nil {
			log.Warnw("closing transport", "err", err)
		}
	}()
	client := gomiio.NewClient(sender, log.Library())

	if rest[0] == "serve" {
		gin.SetMode(gin.ReleaseMode)
		if err := serve(ctx, cfg.HTTPAddr, newRouter(client, family, log), log); err != nil {
			fmt.Fprintln(stderr, err)
			return exitError
		}
		return exitOK
	}

	act, err := prepareCommand(rest[0], rest[1:], family)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	out, err := act(ctx, client)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}
	fmt.Fprintln(stdout, out)
	return exitOK
}

func usage(w io.Writer, flags *pflag.FlagSet) {
	fmt.Fprintln(w, "Usage: miioctl [flags] <command> [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, c := range commands {
		name := c.name
		if c.args != "" {
			name += " " + c.args
		}
		fmt.Fprintf(w, "  %-40s %s%s\n", name, c.summary, familyNote(c.families))
	}
	fmt.Fprintf(w, "  %-40s %s\n", "serve", "run the HTTP API")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprint(w, flags.FlagUsages())
}

func familyNote(families []gomiio.Family) string {
	if families == nil {
		return ""
	}
	names := make([]string, len(families))
	for i, f := range families {
		names[i] = string(f)
	}
	return " (" + strings.Join(names, ", ") + ")"
}

func serve(ctx context.Context, addr string, handler http.Handler, log *logger.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errs := make(chan error, 1)
	go func() {
		log.Infow("listening", "addr", addr)
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	log.Infow("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// lazySender connects to the broker on the first call, so commands that
// fail their argument checks never touch the network.
type lazySender struct {
	cfg    *settings
	logger gomiio.Logger

	mu     sync.Mutex
	client mqtt.Client
	sender *mqttrpc.Sender
}

func newLazySender(cfg *settings, logger gomiio.Logger) *lazySender {
	return &lazySender{cfg: cfg, logger: logger}
}

func (l *lazySender) Send(ctx context.Context, method string, params []any) (any, error) {
	s, err := l.connect()
	if err != nil {
		return nil, err
	}
	return s.Send(ctx, method, params)
}

func (l *lazySender) connect() (*mqttrpc.Sender, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.sender != nil {
		return l.sender, nil
	}

	client, err := mqttrpc.Connect(mqttrpc.BrokerConfig{
		URL:      l.cfg.Broker,
		Username: l.cfg.Username,
		Password: l.cfg.Password,
		ClientID: "miioctl",
	}, l.cfg.Timeout)
	if err != nil {
		return nil, err
	}

	sender, err := mqttrpc.New(client, mqttrpc.Config{
		DeviceID:    l.cfg.DeviceID,
		TopicPrefix: l.cfg.TopicPrefix,
		Timeout:     l.cfg.Timeout,
		Logger:      l.logger,
	})
	if err != nil {
		client.Disconnect(250)
		return nil, err
	}
	l.client, l.sender = client, sender
	return sender, nil
}

func (l *lazySender) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.sender == nil {
		return nil
	}
	err := l.sender.Close()
	l.client.Disconnect(250)
	l.client, l.sender = nil, nil
	return err
}

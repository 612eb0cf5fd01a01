// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"time"
)

// Config holds the settings used to initialize a telemetry client. It is
// immutable once built: all fields are set exactly once by the builder and
// only exposed through read-only accessors. The struct is comparable, so two
// configs built from the same inputs compare equal with ==.
//
// A finalized Config is safe to share across goroutines without
// synchronization.
type Config struct {
	// instrumentationKey identifies the application emitting telemetry. It
	// is treated as an opaque string; no format checks are performed here.
	instrumentationKey string
	// endpoint is the URL telemetry batches are submitted to.
	endpoint string
	// interval is the max time to wait before a batch of telemetry is sent,
	// regardless of batch size.
	interval time.Duration
}

const (
	defaultEndpoint = "https://dc.services.visualstudio.com/v2/track"
	defaultInterval = 2 * time.Second
)

// New returns a Config with the given instrumentation key and the default
// endpoint and submission interval. It accepts any key, including the empty
// string; validating the key is the consuming client's responsibility.
func New(instrumentationKey string) Config {
	return NewBuilder().WithInstrumentationKey(instrumentationKey).Build()
}

// NewBuilder returns the entry point for customized configs. The returned
// stage injects the defaults before any override can be applied.
func NewBuilder() DefaultBuilder {
	return DefaultBuilder{}
}

// InstrumentationKey returns the instrumentation key for the client.
func (c Config) InstrumentationKey() string {
	return c.instrumentationKey
}

// Endpoint returns the URL telemetry will be sent to.
func (c Config) Endpoint() string {
	return c.endpoint
}

// Interval returns the max time to wait until a batch of telemetry is sent.
func (c Config) Interval() time.Duration {
	return c.interval
}

func (c Config) String() string {
	return fmt.Sprintf("[instrumentation key: %s, endpoint: %s, interval: %s]",
		c.instrumentationKey, c.endpoint, c.interval)
}

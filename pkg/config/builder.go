// SPDX-License-Identifier: Apache-2.0

package config

import "time"

// DefaultBuilder is the seeding stage of the builder chain. It carries no
// state; its only job is to hand out a Builder pre-populated with the system
// defaults, so that every construction path starts from the same baseline.
type DefaultBuilder struct{}

// WithInstrumentationKey seeds a mutable Builder with the given key, the
// default endpoint, and the default interval. This is the only place
// defaults are injected, which keeps them centralized should more settings
// be added later.
func (DefaultBuilder) WithInstrumentationKey(key string) *Builder {
	return &Builder{
		instrumentationKey: key,
		endpoint:           defaultEndpoint,
		interval:           defaultInterval,
	}
}

// Builder stages the fields of a Config before it is finalized. Overrides
// may be applied in any order and any number of times; the last write wins
// per field. A Builder belongs to a single construction sequence and is not
// safe for concurrent use.
//
// Build finalizes the Builder. A finalized Builder must not be used again;
// doing so is a programming error and panics.
type Builder struct {
	instrumentationKey string
	endpoint           string
	interval           time.Duration
	built              bool
}

// WithInstrumentationKey replaces the staged instrumentation key.
func (b *Builder) WithInstrumentationKey(key string) *Builder {
	b.checkNotBuilt()
	b.instrumentationKey = key
	return b
}

// WithEndpoint replaces the staged endpoint URL. The value is stored as-is;
// a malformed URL surfaces when the transport first uses it, not here.
func (b *Builder) WithEndpoint(endpoint string) *Builder {
	b.checkNotBuilt()
	b.endpoint = endpoint
	return b
}

// WithInterval replaces the staged submission interval. Zero and arbitrarily
// large intervals are accepted; bounding them is up to the consuming client.
func (b *Builder) WithInterval(interval time.Duration) *Builder {
	b.checkNotBuilt()
	b.interval = interval
	return b
}

// Endpoint returns the endpoint staged so far, letting a collaborator
// inspect the in-progress configuration before it is finalized.
func (b *Builder) Endpoint() string {
	b.checkNotBuilt()
	return b.endpoint
}

// Interval returns the submission interval staged so far.
func (b *Builder) Interval() time.Duration {
	b.checkNotBuilt()
	return b.interval
}

// Build finalizes the Builder into an immutable Config, copying the staged
// fields verbatim. It always succeeds: empty strings and a zero interval are
// legal staged values. The Builder is consumed; any further use panics.
func (b *Builder) Build() Config {
	b.checkNotBuilt()
	b.built = true
	return Config{
		instrumentationKey: b.instrumentationKey,
		endpoint:           b.endpoint,
		interval:           b.interval,
	}
}

func (b *Builder) checkNotBuilt() {
	if b.built {
		panic("config: builder must not be reused after Build")
	}
}

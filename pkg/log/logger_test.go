// SPDX-License-Identifier: Apache-2.0

package log

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_NewLogger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		logger Logger

		wantNoop bool
	}{
		{
			name:   "ok - nil defaults to noop",
			logger: nil,

			wantNoop: true,
		},
		{
			name:   "ok - non nil logger is returned as is",
			logger: &NoopLogger{},

			wantNoop: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			logger := NewLogger(tc.logger)
			require.NotNil(t, logger)
			_, isNoop := logger.(*NoopLogger)
			require.Equal(t, tc.wantNoop, isNoop)
			if tc.logger != nil {
				require.Same(t, tc.logger, logger)
			}
		})
	}
}

func Test_MergeFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		f1   Fields
		f2   Fields

		wantFields Fields
	}{
		{
			name: "ok - disjoint fields",
			f1:   Fields{"a": 1},
			f2:   Fields{"b": 2},

			wantFields: Fields{"a": 1, "b": 2},
		},
		{
			name: "ok - second map wins on conflict",
			f1:   Fields{"a": 1, "b": 1},
			f2:   Fields{"b": 2},

			wantFields: Fields{"a": 1, "b": 2},
		},
		{
			name: "ok - nil maps",
			f1:   nil,
			f2:   nil,

			wantFields: Fields{},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.wantFields, MergeFields(tc.f1, tc.f2))
		})
	}
}

func Test_NoopLogger_WithFields(t *testing.T) {
	t.Parallel()

	logger := NewNoopLogger()
	require.Same(t, Logger(logger), logger.WithFields(Fields{ModuleField: "config"}))
}

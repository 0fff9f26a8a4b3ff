package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf)

	logger.Info().Str("module", "CS1010").Msg("normalized")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "CS1010", entry["module"])
	assert.Equal(t, "normalized", entry["message"])
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	assert.Equal(t, Default(), FromContext(context.Background()))
	assert.Equal(t, Default(), FromContext(nil)) //nolint:staticcheck // nil context fallback is the point
}

func TestWithLoggerRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf)

	ctx := WithLogger(context.Background(), &logger)
	FromContext(ctx).Info().Msg("from context")

	assert.Contains(t, buf.String(), "from context")
}

func TestWithModuleAddsField(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf)

	ctx := WithModule(WithLogger(context.Background(), &logger), "GEK1517")
	FromContext(ctx).Info().Msg("folded")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "GEK1517", entry["module"])
}

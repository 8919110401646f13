package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureGlobal(t *testing.T) *bytes.Buffer {
	t.Helper()
	prev := log.Logger
	t.Cleanup(func() { log.Logger = prev })

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf).Hook(ContextHook{})
	return &buf
}

func TestComponent(t *testing.T) {
	tests := []struct {
		name string
		ctx  context.Context
		want map[string]any
	}{
		{
			name: CmpService,
			ctx:  context.Background(),
			want: map[string]any{"cmp": "service", "message": "document saved"},
		},
		{
			name: CmpWatcher,
			ctx:  WithDocument(context.Background(), "/docs/snippets.json"),
			want: map[string]any{"cmp": "watcher", "document": "/docs/snippets.json", "message": "document saved"},
		},
		{
			name: CmpService,
			ctx:  WithCommand(WithDocument(context.Background(), "/docs/a.json"), "add"),
			want: map[string]any{"cmp": "service", "command": "add", "document": "/docs/a.json", "message": "document saved"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureGlobal(t)

			logger := Component(tt.name)
			logger.Info().Ctx(tt.ctx).Msg("document saved")

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			delete(entry, "level")
			assert.Equal(t, tt.want, entry)
		})
	}
}

package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/poiesic/yojana/ai"
	"github.com/poiesic/yojana/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer guards a bytes.Buffer written by concurrent stages.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWithLogger_TagsEachComponent(t *testing.T) {
	f := newFixture(t, scheme("Kisan Credit", 0.75))
	f.translator.TranslateSchemesFunc = func(ctx context.Context, target string, items []ai.TranslationItem) ([]ai.TranslationItem, error) {
		return nil, errors.New("upstream unavailable")
	}

	var out syncBuffer
	logger := slog.New(slog.NewJSONHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug}))
	p := f.pipeline(t, WithLogger(logger))

	result := p.Query(context.Background(), Request{Query: "हम किसान बानी, हमरा खातिर कवनो योजना बा?"})
	require.Equal(t, core.ResultOK, result.Kind)

	components := map[string]string{}
	for _, line := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		var entry struct {
			Msg       string `json:"msg"`
			Component string `json:"component"`
		}
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		components[entry.Msg] = entry.Component
	}

	assert.Equal(t, "profile-extractor", components["profile extracted"])
	assert.Equal(t, "retriever", components["retrieved candidates"])
	assert.Equal(t, "localizer", components["batch translation failed, keeping English text"])
	assert.Equal(t, "pipeline", components["query complete"])
}

func TestWithLogger_NilKeepsDefaults(t *testing.T) {
	f := newFixture(t)
	p := f.pipeline(t, WithLogger(nil))
	assert.Nil(t, p.base)
	assert.NotNil(t, p.logger)
}

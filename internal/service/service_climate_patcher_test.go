package service

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/MKhiriev/climate-adjuster/internal/logger"
	"github.com/MKhiriev/climate-adjuster/internal/mock"
	"github.com/MKhiriev/climate-adjuster/internal/store"
	"github.com/MKhiriev/climate-adjuster/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func newBufferLogger(buf *bytes.Buffer) *logger.Logger {
	return &logger.Logger{Logger: zerolog.New(buf).Level(zerolog.DebugLevel)}
}

// logLines decodes every JSON log line written to buf.
func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var lines []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		lines = append(lines, entry)
	}
	return lines
}

// ── Patch ─────────────────────────────────────────────────────────────────────

// TestClimatePatcher_Patch_Merges verifies the patched outcome: a downfall
// override of 1.4 clamped at load time merges as 1.0.
func TestClimatePatcher_Patch_Merges(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	key := models.MustParseKey("mymod:desert_oasis")
	mockStore := mock.NewMockOverrideStore(ctrl)
	mockStore.EXPECT().Lookup(key).Return(models.ClimateOverride{Downfall: models.Ptr[float32](1.0)}, true)

	var buf bytes.Buffer
	patcher := NewClimatePatcher(mockStore, newBufferLogger(&buf))

	got, ok := patcher.Patch(context.Background(), key, testBaseline)
	require.True(t, ok)
	assert.Equal(t, models.Climate{
		Precipitation:       models.PrecipitationNone,
		Temperature:         2.0,
		TemperatureModifier: models.TemperatureModifierNone,
		Downfall:            1.0,
	}, got)

	lines := logLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, OutcomePatched, lines[0]["outcome"])
	assert.Equal(t, "info", lines[0]["level"])
	assert.Equal(t, "mymod:desert_oasis", lines[0]["key"])
}

// TestClimatePatcher_Patch_UsesRequestLogger verifies that trace lines go to
// the logger attached to ctx and keep its trace_id.
func TestClimatePatcher_Patch_UsesRequestLogger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	key := models.MustParseKey("mymod:x")
	mockStore := mock.NewMockOverrideStore(ctrl)
	mockStore.EXPECT().Lookup(key).Return(models.ClimateOverride{}, true)

	var own, request bytes.Buffer
	patcher := NewClimatePatcher(mockStore, newBufferLogger(&own))

	requestLogger := zerolog.New(&request).With().Str("trace_id", "trace-42").Logger()
	ctx := requestLogger.WithContext(context.Background())

	_, ok := patcher.Patch(ctx, key, testBaseline)
	require.False(t, ok)

	assert.Zero(t, own.Len())
	lines := logLines(t, &request)
	require.Len(t, lines, 1)
	assert.Equal(t, "trace-42", lines[0]["trace_id"])
	assert.Equal(t, OutcomeSkippedEmpty, lines[0]["outcome"])
}

// TestClimatePatcher_Patch_NoConfig verifies the absent-entry outcome.
func TestClimatePatcher_Patch_NoConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	key := models.MustParseKey("plains")
	mockStore := mock.NewMockOverrideStore(ctrl)
	mockStore.EXPECT().Lookup(key).Return(models.ClimateOverride{}, false)

	var buf bytes.Buffer
	patcher := NewClimatePatcher(mockStore, newBufferLogger(&buf))

	_, ok := patcher.Patch(context.Background(), key, testBaseline)
	assert.False(t, ok)

	lines := logLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, OutcomeNoConfig, lines[0]["outcome"])
	assert.Equal(t, "debug", lines[0]["level"])
}

// TestClimatePatcher_Patch_SkipsEmpty verifies that a no-op entry is skipped
// and never merged.
func TestClimatePatcher_Patch_SkipsEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	key := models.MustParseKey("mymod:x")
	mockStore := mock.NewMockOverrideStore(ctrl)
	mockStore.EXPECT().Lookup(key).Return(models.ClimateOverride{}, true)

	var buf bytes.Buffer
	patcher := NewClimatePatcher(mockStore, newBufferLogger(&buf))

	_, ok := patcher.Patch(context.Background(), key, testBaseline)
	assert.False(t, ok)

	lines := logLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, OutcomeSkippedEmpty, lines[0]["outcome"])
	assert.Equal(t, "info", lines[0]["level"])
}

// TestClimatePatcher_Patch_ModifierOnlyIsEffective verifies that an entry
// setting only the temperature modifier is not treated as empty.
func TestClimatePatcher_Patch_ModifierOnlyIsEffective(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	key := models.MustParseKey("frozen_ocean")
	mockStore := mock.NewMockOverrideStore(ctrl)
	mockStore.EXPECT().Lookup(key).Return(models.ClimateOverride{TemperatureModifier: models.Ptr(models.TemperatureModifierFrozen)}, true)

	patcher := NewClimatePatcher(mockStore, logger.Nop())

	got, ok := patcher.Patch(context.Background(), key, testBaseline)
	require.True(t, ok)
	assert.Equal(t, models.TemperatureModifierFrozen, got.TemperatureModifier)
}

// TestClimatePatcher_Patch_NilStoreNeverMatches verifies that a failed load
// disables patching without panicking.
func TestClimatePatcher_Patch_NilStoreNeverMatches(t *testing.T) {
	var buf bytes.Buffer
	patcher := NewClimatePatcher(nil, newBufferLogger(&buf))

	for _, name := range []string{"mymod:a", "plains", "mymod:desert_oasis"} {
		_, ok := patcher.Patch(context.Background(), models.MustParseKey(name), testBaseline)
		assert.False(t, ok, name)
	}

	for _, line := range logLines(t, &buf) {
		assert.Equal(t, OutcomeNoConfig, line["outcome"])
	}
}

// TestClimatePatcher_Patch_Concurrent verifies concurrent use over a real store.
func TestClimatePatcher_Patch_Concurrent(t *testing.T) {
	key := models.MustParseKey("mymod:x")
	overrides := store.NewOverrideStore(models.Overrides{key: {Temperature: models.Ptr[float32](0.3)}})
	patcher := NewClimatePatcher(overrides, logger.Nop())

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, ok := patcher.Patch(context.Background(), key, testBaseline)
			assert.True(t, ok)
			assert.Equal(t, float32(0.3), got.Temperature)
		}()
	}
	wg.Wait()
}

// ── NewServices ───────────────────────────────────────────────────────────────

// TestNewServices_AbsentStore verifies wiring over a failed load.
func TestNewServices_AbsentStore(t *testing.T) {
	services := NewServices(&store.Storages{}, models.NewAppBuildInfo("1.0.0", "", ""), logger.Nop())
	require.NotNil(t, services.ClimatePatcher)

	_, ok := services.ClimatePatcher.Patch(context.Background(), models.MustParseKey("a"), testBaseline)
	assert.False(t, ok)

	_, err := services.OverrideService.Overrides(context.Background())
	assert.ErrorIs(t, err, ErrOverridesUnavailable)

	assert.Equal(t, "1.0.0", services.AppInfoService.GetAppVersion(context.Background()))
}

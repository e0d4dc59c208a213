package handler

import (
	"context"
	"testing"

	"github.com/MKhiriev/climate-adjuster/internal/codec"
	"github.com/MKhiriev/climate-adjuster/internal/config"
	"github.com/MKhiriev/climate-adjuster/internal/host"
	"github.com/MKhiriev/climate-adjuster/internal/logger"
	"github.com/MKhiriev/climate-adjuster/internal/mock"
	"github.com/MKhiriev/climate-adjuster/internal/service"
	"github.com/MKhiriev/climate-adjuster/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// TestNewHandlers_WithHTTPAddress verifies that both handlers are created and
// the listener is subscribed.
func TestNewHandlers_WithHTTPAddress(t *testing.T) {
	bus := host.NewBus()

	h, err := NewHandlers(&service.Services{}, bus, codec.New(), config.Server{HTTPAddress: ":8080"}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP, "expected HTTP handler to be initialised")
	assert.NotNil(t, h.Event, "expected event handler to be initialised")
	assert.Equal(t, 1, bus.Len())
}

// TestNewHandlers_ApplyMode verifies that without an HTTP address only the
// event handler exists.
func TestNewHandlers_ApplyMode(t *testing.T) {
	bus := host.NewBus()

	h, err := NewHandlers(&service.Services{}, bus, codec.New(), config.Server{}, logger.Nop())

	require.NoError(t, err)
	assert.Nil(t, h.HTTP, "expected HTTP handler to be nil")
	assert.NotNil(t, h.Event)
	assert.Equal(t, 1, bus.Len())
}

// TestNewHandlers_NilBus verifies the error for a missing bus.
func TestNewHandlers_NilBus(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, nil, codec.New(), config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNilBus)
	assert.Nil(t, h)
}

// TestNewHandlers_ListenerPatchesQueries verifies that a query posted on the
// bus reaches the patcher.
func TestNewHandlers_ListenerPatchesQueries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	patcher := mock.NewMockClimatePatcher(ctrl)
	key := models.MustParseKey("plains")
	merged := models.Climate{Precipitation: models.PrecipitationRain, Temperature: 0.8, Downfall: 0.4}
	patcher.EXPECT().Patch(gomock.Any(), key, models.Climate{}).Return(merged, true)

	bus := host.NewBus()
	_, err := NewHandlers(&service.Services{ClimatePatcher: patcher}, bus, codec.New(), config.Server{}, logger.Nop())
	require.NoError(t, err)

	q := bus.Post(context.Background(), host.NewClimateQuery(key, models.Climate{}))
	assert.True(t, q.Changed())
	assert.Equal(t, merged, q.Climate())
}

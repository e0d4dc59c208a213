package http

import (
	"context"
	"testing"

	"github.com/MKhiriev/climate-adjuster/internal/codec"
	"github.com/MKhiriev/climate-adjuster/internal/config"
	"github.com/MKhiriev/climate-adjuster/internal/host"
	"github.com/MKhiriev/climate-adjuster/internal/logger"
	"github.com/MKhiriev/climate-adjuster/internal/mock"
	"github.com/MKhiriev/climate-adjuster/internal/service"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// testDeps holds the mocks behind a Handler built by newTestHandler.
type testDeps struct {
	patcher   *mock.MockClimatePatcher
	overrides *mock.MockOverrideService
	appInfo   *mock.MockAppInfoService
	bus       *host.Bus
}

// newTestHandler builds a Handler whose bus forwards every query to a mock
// patcher, the same way the event handler does.
func newTestHandler(t *testing.T, ctrl *gomock.Controller, opts ...codec.Option) (*Handler, testDeps) {
	t.Helper()

	deps := testDeps{
		patcher:   mock.NewMockClimatePatcher(ctrl),
		overrides: mock.NewMockOverrideService(ctrl),
		appInfo:   mock.NewMockAppInfoService(ctrl),
		bus:       host.NewBus(),
	}

	require.NoError(t, deps.bus.AddListener(host.PriorityLowest, host.ListenerFunc(func(ctx context.Context, q *host.ClimateQuery) {
		if merged, ok := deps.patcher.Patch(ctx, q.Name(), q.Climate()); ok {
			q.SetClimate(merged)
		}
	})))

	services := &service.Services{
		ClimatePatcher:  deps.patcher,
		OverrideService: deps.overrides,
		AppInfoService:  deps.appInfo,
	}

	h := NewHandler(services, deps.bus, codec.New(opts...), config.Server{}, logger.Nop())
	return h, deps
}

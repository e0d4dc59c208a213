package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/climate-adjuster/internal/mock"
	"github.com/MKhiriev/climate-adjuster/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOverrideService_Overrides_ReturnsStoreCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	want := models.Overrides{models.MustParseKey("mymod:a"): {Downfall: models.Ptr[float32](0.4)}}
	mockStore := mock.NewMockOverrideStore(ctrl)
	mockStore.EXPECT().Overrides().Return(want)

	got, err := NewOverrideService(mockStore).Overrides(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestOverrideService_Overrides_Unavailable(t *testing.T) {
	got, err := NewOverrideService(nil).Overrides(context.Background())
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrOverridesUnavailable)
}

package host

import (
	"context"
	"testing"

	"github.com/MKhiriev/climate-adjuster/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestResolve_OrderedResults verifies key ordering and change tracking.
func TestResolve_OrderedResults(t *testing.T) {
	bus := NewBus()
	target := models.MustParseKey("mymod:b")
	require.NoError(t, bus.AddListener(PriorityLowest, ListenerFunc(func(_ context.Context, q *ClimateQuery) {
		if q.Name() == target {
			q.SetClimate(models.Climate{Precipitation: models.PrecipitationSnow})
		}
	})))

	baselines := map[models.Key]models.Climate{
		models.MustParseKey("mymod:b"): {Temperature: 1},
		models.MustParseKey("mymod:a"): {Temperature: 2},
	}

	got, err := Resolve(context.Background(), bus, baselines)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, models.MustParseKey("mymod:a"), got[0].Name)
	assert.False(t, got[0].Changed)
	assert.Equal(t, got[0].Baseline, got[0].Climate)

	assert.Equal(t, target, got[1].Name)
	assert.True(t, got[1].Changed)
	assert.Equal(t, models.Climate{Temperature: 1}, got[1].Baseline)
	assert.Equal(t, models.Climate{Precipitation: models.PrecipitationSnow}, got[1].Climate)

	assert.Equal(t, map[models.Key]models.Climate{
		models.MustParseKey("mymod:a"): {Temperature: 2},
		target:                         {Precipitation: models.PrecipitationSnow},
	}, Climates(got))
}

// TestResolve_Cancelled verifies that a cancelled context aborts the batch.
func TestResolve_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := Resolve(ctx, NewBus(), map[models.Key]models.Climate{models.MustParseKey("a"): {}})
	assert.Nil(t, got)
	assert.ErrorIs(t, err, context.Canceled)
}

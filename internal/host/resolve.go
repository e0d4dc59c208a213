package host

import (
	"context"

	"github.com/MKhiriev/climate-adjuster/internal/codec"
	"github.com/MKhiriev/climate-adjuster/models"
)

// Resolution is the outcome of one query posted by [Resolve].
type Resolution struct {
	Name     models.Key
	Baseline models.Climate
	Climate  models.Climate
	Changed  bool
}

// Resolve posts one query per baseline, in key order, and collects the
// results. It stops with ctx.Err() when ctx is cancelled.
func Resolve(ctx context.Context, bus *Bus, baselines map[models.Key]models.Climate) ([]Resolution, error) {
	resolutions := make([]Resolution, 0, len(baselines))
	for _, key := range codec.SortedKeys(baselines) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		query := bus.Post(ctx, NewClimateQuery(key, baselines[key]))
		resolutions = append(resolutions, Resolution{
			Name:     key,
			Baseline: query.Baseline(),
			Climate:  query.Climate(),
			Changed:  query.Changed(),
		})
	}

	return resolutions, nil
}

// Climates collects the final record of every resolution.
func Climates(resolutions []Resolution) map[models.Key]models.Climate {
	out := make(map[models.Key]models.Climate, len(resolutions))
	for _, r := range resolutions {
		out[r.Name] = r.Climate
	}
	return out
}

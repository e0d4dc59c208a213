package host

import "github.com/MKhiriev/climate-adjuster/models"

// ClimateQuery is posted once per key when the host resolves the climate of
// a record. Listeners read the current value and may replace it.
type ClimateQuery struct {
	name     models.Key
	baseline models.Climate
	climate  models.Climate
	changed  bool
}

// NewClimateQuery starts a query for name with the host's own record.
func NewClimateQuery(name models.Key, baseline models.Climate) *ClimateQuery {
	return &ClimateQuery{
		name:     name,
		baseline: baseline,
		climate:  baseline,
	}
}

func (q *ClimateQuery) Name() models.Key {
	return q.name
}

// Baseline returns the record the query was started with.
func (q *ClimateQuery) Baseline() models.Climate {
	return q.baseline
}

// Climate returns the current record, including changes made by listeners
// that ran earlier.
func (q *ClimateQuery) Climate() models.Climate {
	return q.climate
}

// SetClimate replaces the current record.
func (q *ClimateQuery) SetClimate(climate models.Climate) {
	q.climate = climate
	q.changed = true
}

// Changed reports whether any listener called SetClimate.
func (q *ClimateQuery) Changed() bool {
	return q.changed
}

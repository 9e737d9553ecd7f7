package pokemon

import (
	"github.com/cespare/xxhash/v2"
)

// Grid sizes for synthetic encounter coordinates.
const (
	latBuckets = 90
	lonBuckets = 180
)

// Locations places encounter areas on a synthetic grid. Upstream data has no
// coordinates, so each area name is hashed to a stable (lat, lon) cell.
// Duplicate areas are collapsed; order follows first appearance.
func Locations(areas []string) ([]Location, error) {
	seen := make(map[string]bool, len(areas))
	out := make([]Location, 0, len(areas))
	for _, area := range areas {
		if area == "" || seen[area] {
			continue
		}
		seen[area] = true
		h := xxhash.Sum64String(area)
		out = append(out, Location{
			Area: area,
			Lat:  int(h % latBuckets),
			Lon:  int(h % lonBuckets),
		})
	}
	if len(out) == 0 {
		return nil, ErrNoLocations
	}
	return out, nil
}

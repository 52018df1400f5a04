package domain

type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type RoadType string

const (
	RoadTypeHighway     RoadType = "highway"
	RoadTypePrimary     RoadType = "primary"
	RoadTypeSecondary   RoadType = "secondary"
	RoadTypeTertiary    RoadType = "tertiary"
	RoadTypeResidential RoadType = "residential"
)

func (t RoadType) Valid() bool {
	switch t {
	case RoadTypeHighway, RoadTypePrimary, RoadTypeSecondary, RoadTypeTertiary, RoadTypeResidential:
		return true
	}
	return false
}

// RecommendedLanes is the target lane count used when sizing a widening
// proposal. Zero for unknown road types.
func (t RoadType) RecommendedLanes() int {
	switch t {
	case RoadTypeHighway:
		return 6
	case RoadTypePrimary:
		return 4
	case RoadTypeSecondary:
		return 3
	case RoadTypeTertiary, RoadTypeResidential:
		return 2
	}
	return 0
}

// RoadMetadata holds the static attributes of a road segment. Owned by the
// road registry; read-only to the analysis core.
type RoadMetadata struct {
	ID                string   `json:"id" db:"id"`
	AreaID            string   `json:"area_id" db:"area_id"`
	Name              string   `json:"name" db:"name"`
	Type              RoadType `json:"road_type" db:"road_type"`
	LengthKm          float64  `json:"length_km" db:"length_km"`
	Lanes             int      `json:"lanes" db:"lanes"`
	IntersectionCount int      `json:"intersection_count" db:"intersection_count"`
	Geometry          []Point  `json:"geometry"`
}

// HasCostBasis reports whether cost estimation is possible for this road.
// Without a length and a known type the recommender skips the road.
func (m RoadMetadata) HasCostBasis() bool {
	return m.LengthKm > 0 && m.Type.Valid()
}

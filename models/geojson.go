package models

// FeatureCollection, harita görünümü için GeoJSON çıktısı (RFC 7946).
// Koordinat sırası [boylam, enlem]'dir.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Feature, tek bir restoran noktası.
type Feature struct {
	Type       string         `json:"type"`
	Geometry   Point          `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

// Point, GeoJSON nokta geometrisi.
type Point struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// RestaurantFeatures, restoranları GeoJSON'a çevirir. Koordinatı (0,0) olan
// kayıtlar (konumu girilmemiş) haritaya konmaz.
func RestaurantFeatures(rs []Restaurant) FeatureCollection {
	fc := FeatureCollection{Type: "FeatureCollection", Features: []Feature{}}
	for _, r := range rs {
		if r.Latitude == 0 && r.Longitude == 0 {
			continue
		}
		fc.Features = append(fc.Features, Feature{
			Type:     "Feature",
			Geometry: Point{Type: "Point", Coordinates: [2]float64{r.Longitude, r.Latitude}},
			Properties: map[string]any{
				"id":           r.ID,
				"name":         r.Name,
				"cuisine_type": r.CuisineType,
				"district":     r.District,
				"price_range":  r.PriceRange,
				"rating":       r.Rating,
			},
		})
	}
	return fc
}

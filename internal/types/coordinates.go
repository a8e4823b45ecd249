package types

import "fmt"

// Coords is a WGS84 latitude/longitude pair in decimal degrees.
type Coords struct {
	Latitude  float64 `json:"latitude" example:"39.11539"`
	Longitude float64 `json:"longitude" example:"-107.6584"`
}

func NewCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// Valid reports whether the pair lies within [-90,90] x [-180,180].
func (c Coords) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

func (c Coords) String() string {
	return fmt.Sprintf("(%.6f, %.6f)", c.Latitude, c.Longitude)
}

package entity

import (
	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Location is an administrative area users live in and events take place in.
type Location struct {
	ID          uuid.UUID
	Province    string
	City        string
	Town        string
	Description string
	Latitude    *float64 // Optional centre coordinates used for nearby recommendations.
	Longitude   *float64
}

// Point returns the location centre and whether coordinates are known.
func (l *Location) Point() (orb.Point, bool) {
	if l.Latitude == nil || l.Longitude == nil {
		return orb.Point{}, false
	}

	return orb.Point{*l.Longitude, *l.Latitude}, true
}

package entity

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// Coordinate is a WGS84 latitude/longitude pair in degrees
type Coordinate struct {
	Lat float64 `json:"latitude"`
	Lng float64 `json:"longitude"`
}

// NewCoordinate returns a Coordinate when both components are finite
func NewCoordinate(lat, lng float64) (Coordinate, bool) {
	c := Coordinate{Lat: lat, Lng: lng}

	return c, c.IsFinite()
}

// IsFinite reports whether both components are real numbers
func (c Coordinate) IsFinite() bool {
	return !math.IsNaN(c.Lat) && !math.IsInf(c.Lat, 0) &&
		!math.IsNaN(c.Lng) && !math.IsInf(c.Lng, 0)
}

// Point converts to an orb point, which is ordered [lng, lat]
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Lng, c.Lat}
}

// CoordinateFromPoint converts an orb point back to a Coordinate
func CoordinateFromPoint(p orb.Point) Coordinate {
	return Coordinate{Lat: p.Lat(), Lng: p.Lon()}
}

// Quantize rounds both components to the given number of decimal degrees
func (c Coordinate) Quantize(decimals int) Coordinate {
	scale := math.Pow(10, float64(decimals))

	return Coordinate{
		Lat: math.Round(c.Lat*scale) / scale,
		Lng: math.Round(c.Lng*scale) / scale,
	}
}

// String formats the coordinate as "lat,lng"
func (c Coordinate) String() string {
	return formatDegrees(c.Lat) + "," + formatDegrees(c.Lng)
}

// LngLat formats the coordinate as "lng,lat", the order routing services expect
func (c Coordinate) LngLat() string {
	return formatDegrees(c.Lng) + "," + formatDegrees(c.Lat)
}

func formatDegrees(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// LineString converts a coordinate sequence into an orb line string
func LineString(coords []Coordinate) orb.LineString {
	ls := make(orb.LineString, len(coords))
	for i, c := range coords {
		ls[i] = c.Point()
	}

	return ls
}

// FlexFloat decodes a JSON number or a numeric string.
// Valid is false for null, missing, or unparsable values.
type FlexFloat struct {
	Value float64
	Valid bool
}

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	*f = FlexFloat{}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil
		}
		f.Value, f.Valid = v, true

		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}
	f.Value, f.Valid = v, true

	return nil
}

// Ptr returns the value as a pointer when it is valid and finite
func (f FlexFloat) Ptr() *float64 {
	if !f.Valid || math.IsNaN(f.Value) || math.IsInf(f.Value, 0) {
		return nil
	}
	v := f.Value

	return &v
}

// RawCoordinate is the wire shape of a backend coordinate. The backend spells
// the keys either {latitude, longitude} or {lat, lng}; the long form wins when
// both are present.
type RawCoordinate struct {
	Latitude  *FlexFloat `json:"latitude,omitempty"`
	Longitude *FlexFloat `json:"longitude,omitempty"`
	Lat       *FlexFloat `json:"lat,omitempty"`
	Lng       *FlexFloat `json:"lng,omitempty"`
}

// Normalize returns the canonical Coordinate, or nil when either component is
// missing or not finite
func (r *RawCoordinate) Normalize() *Coordinate {
	if r == nil {
		return nil
	}

	lat := pickComponent(r.Latitude, r.Lat)
	lng := pickComponent(r.Longitude, r.Lng)
	if lat == nil || lng == nil {
		return nil
	}

	c, ok := NewCoordinate(*lat, *lng)
	if !ok {
		return nil
	}

	return &c
}

func pickComponent(primary, alternate *FlexFloat) *float64 {
	if primary != nil && primary.Valid {
		return primary.Ptr()
	}
	if alternate != nil && alternate.Valid {
		return alternate.Ptr()
	}

	return nil
}

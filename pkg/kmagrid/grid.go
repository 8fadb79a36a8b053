// Package kmagrid converts WGS84 coordinates to the 5 km forecast grid used by the
// Korea Meteorological Administration (Lambert conformal conic projection).
package kmagrid

import (
	"fmt"
	"math"
)

const (
	earthRadiusKm = 6371.00877
	gridKm        = 5.0
	stdLat1       = 30.0
	stdLat2       = 60.0
	originLon     = 126.0
	originLat     = 38.0
	originX       = 43
	originY       = 136

	degToRad = math.Pi / 180.0
)

// Point is a cell of the forecast grid.
type Point struct {
	NX int `json:"nx"`
	NY int `json:"ny"`
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.NX, p.NY)
}

type projection struct {
	re, sn, sf, ro float64
}

var lcc = newProjection()

func newProjection() projection {
	re := earthRadiusKm / gridKm
	slat1 := stdLat1 * degToRad
	slat2 := stdLat2 * degToRad
	olat := originLat * degToRad

	sn := math.Tan(math.Pi*0.25+slat2*0.5) / math.Tan(math.Pi*0.25+slat1*0.5)
	sn = math.Log(math.Cos(slat1)/math.Cos(slat2)) / math.Log(sn)

	sf := math.Pow(math.Tan(math.Pi*0.25+slat1*0.5), sn) * math.Cos(slat1) / sn
	ro := re * sf / math.Pow(math.Tan(math.Pi*0.25+olat*0.5), sn)

	return projection{re: re, sn: sn, sf: sf, ro: ro}
}

// ToGrid returns the grid cell containing the given latitude and longitude.
func ToGrid(lat, lon float64) Point {
	ra := lcc.re * lcc.sf / math.Pow(math.Tan(math.Pi*0.25+lat*degToRad*0.5), lcc.sn)

	theta := lon*degToRad - originLon*degToRad
	if theta > math.Pi {
		theta -= 2.0 * math.Pi
	}
	if theta < -math.Pi {
		theta += 2.0 * math.Pi
	}
	theta *= lcc.sn

	return Point{
		NX: int(math.Floor(ra*math.Sin(theta) + originX + 0.5)),
		NY: int(math.Floor(lcc.ro - ra*math.Cos(theta) + originY + 0.5)),
	}
}

// Valid reports whether p lies inside the published grid (149 x 253 cells).
func (p Point) Valid() bool {
	return p.NX >= 1 && p.NX <= 149 && p.NY >= 1 && p.NY <= 253
}

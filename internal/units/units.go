// Package units holds the measurement types shared by the weather models and
// the pure constructors that fill in derived fields. A derived field (mph from
// kph, Fahrenheit from Celsius) is computed only when the caller does not
// supply it; an explicit value always wins, even when it disagrees with the
// base value.
package units

import "math"

// Direction is an 8-point compass wind direction.
type Direction string

const (
	North     Direction = "N"
	Northeast Direction = "NE"
	East      Direction = "E"
	Southeast Direction = "SE"
	South     Direction = "S"
	Southwest Direction = "SW"
	West      Direction = "W"
	Northwest Direction = "NW"
)

// Directions lists all compass directions in clockwise order.
var Directions = []Direction{North, Northeast, East, Southeast, South, Southwest, West, Northwest}

// Temperature carries one reading in three scales.
type Temperature struct {
	Celsius    float64 `json:"celsius"`
	Fahrenheit float64 `json:"fahrenheit"`
	Kelvin     float64 `json:"kelvin"`
}

// NewTemperature builds a Temperature from Celsius, deriving Fahrenheit and
// Kelvin.
func NewTemperature(celsius float64) Temperature {
	return NewTemperatureWith(celsius, nil, nil)
}

// NewTemperatureWith builds a Temperature from Celsius with optional explicit
// Fahrenheit and Kelvin values. A non-nil override is stored verbatim even if
// it is inconsistent with the Celsius value.
func NewTemperatureWith(celsius float64, fahrenheit, kelvin *float64) Temperature {
	t := Temperature{Celsius: celsius}
	if fahrenheit != nil {
		t.Fahrenheit = *fahrenheit
	} else {
		t.Fahrenheit = celsius*9/5 + 32
	}
	if kelvin != nil {
		t.Kelvin = *kelvin
	} else {
		t.Kelvin = celsius + 273.15
	}
	return t
}

// Wind describes wind speed and direction. GustKPH is omitted when no gust
// was observed.
type Wind struct {
	SpeedKPH  float64   `json:"speed_kph"`
	SpeedMPH  float64   `json:"speed_mph"`
	Direction Direction `json:"direction"`
	GustKPH   *float64  `json:"gust_kph,omitempty"`
}

// NewWind builds a Wind from a kph speed, deriving mph.
func NewWind(speedKPH float64, direction Direction, gustKPH *float64) Wind {
	return NewWindWith(speedKPH, nil, direction, gustKPH)
}

// NewWindWith builds a Wind with an optional explicit mph value. A non-nil
// override is stored verbatim even if it is inconsistent with the kph value.
func NewWindWith(speedKPH float64, speedMPH *float64, direction Direction, gustKPH *float64) Wind {
	w := Wind{SpeedKPH: speedKPH, Direction: direction, GustKPH: gustKPH}
	if speedMPH != nil {
		w.SpeedMPH = *speedMPH
	} else {
		w.SpeedMPH = speedKPH * 0.621371
	}
	return w
}

// PressureIn converts millibars to inches of mercury.
func PressureIn(mb float64) float64 {
	return mb * 0.02953
}

// PressureInWith returns the explicit inches value when supplied, otherwise
// derives it from millibars.
func PressureInWith(mb float64, in *float64) float64 {
	if in != nil {
		return *in
	}
	return PressureIn(mb)
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

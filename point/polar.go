// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package point

import (
	"fmt"
	"math"
)

// Polar is a Point stored as a radius and an angle in radians.
type Polar struct {
	r, theta float64
}

// NewPolar returns the point at distance r from the origin at angle
// theta. Non-finite components are rejected with a *NonFiniteError and
// the radius must be non-negative.
func NewPolar(r, theta float64) (Polar, error) {
	if err := finite("radius", r); err != nil {
		return Polar{}, err
	}
	if err := finite("angle", theta); err != nil {
		return Polar{}, err
	}
	if r < 0 {
		return Polar{}, fmt.Errorf("negative radius: %v", r)
	}
	return Polar{r: r, theta: theta}, nil
}

func (p Polar) X() float64 {
	return p.r * math.Cos(p.theta)
}

func (p Polar) Y() float64 {
	return p.r * math.Sin(p.theta)
}

// Magnitude returns the radius.
func (p Polar) Magnitude() float64 {
	return p.r
}

// Angle returns the angle normalized to (-π, π].
func (p Polar) Angle() float64 {
	return math.Atan2(p.Y(), p.X())
}

func (p Polar) String() string {
	return fmt.Sprintf("(r=%v, θ=%v)", p.r, p.theta)
}

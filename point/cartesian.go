// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package point

import (
	"fmt"
	"math"
)

// Cartesian is a Point stored as x and y coordinates.
type Cartesian struct {
	x, y float64
}

// NewCartesian returns the point (x, y). Non-finite coordinates are
// rejected with a *NonFiniteError.
func NewCartesian(x, y float64) (Cartesian, error) {
	if err := finite("x", x); err != nil {
		return Cartesian{}, err
	}
	if err := finite("y", y); err != nil {
		return Cartesian{}, err
	}
	return Cartesian{x: x, y: y}, nil
}

func (c Cartesian) X() float64 {
	return c.x
}

func (c Cartesian) Y() float64 {
	return c.y
}

// Magnitude returns the distance to the origin.
func (c Cartesian) Magnitude() float64 {
	return math.Hypot(c.x, c.y)
}

// Angle returns the angle to the positive x axis in radians, in (-π, π].
func (c Cartesian) Angle() float64 {
	return math.Atan2(c.y, c.x)
}

func (c Cartesian) String() string {
	return fmt.Sprintf("(%v, %v)", c.x, c.y)
}

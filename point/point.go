// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package point defines the capability set for points in the plane and
// provides cartesian and polar implementations of it.
package point

import (
	"fmt"
	"math"
)

// Epsilon is the distance below which two points compare equal.
const Epsilon = 1e-15

// Point is the capability set a planar point must implement. There are
// no default implementations; a representation must supply every method.
// Implementations must return finite values from X and Y, since Distance,
// Magnitude and Angle are undefined otherwise.
type Point interface {
	// X returns the x component.
	X() float64
	// Y returns the y component.
	Y() float64
	// Magnitude returns the distance to the origin.
	Magnitude() float64
	// Angle returns the angle to the positive x axis in radians.
	Angle() float64
}

// Distance returns the Euclidean distance between a and b computed via
// their coordinate accessors.
func Distance(a, b Point) float64 {
	return math.Hypot(a.X()-b.X(), a.Y()-b.Y())
}

// Equal returns true if a and b are within Epsilon of each other. It
// treats points of different representations as equal if they denote
// the same location.
func Equal(a, b Point) bool {
	return Distance(a, b) < Epsilon
}

// NonFiniteError indicates a NaN or infinite component value.
type NonFiniteError struct {
	Name  string
	Value float64
}

func (e *NonFiniteError) Error() string {
	return fmt.Sprintf("non-finite %s: %v", e.Name, e.Value)
}

func finite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &NonFiniteError{Name: name, Value: v}
	}
	return nil
}

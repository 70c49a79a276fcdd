// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package point_test

import (
	"errors"
	"math"
	"testing"

	"cloudeng.io/adt/point"
)

func nc(t *testing.T, x, y float64) point.Cartesian {
	t.Helper()
	c, err := point.NewCartesian(x, y)
	if err != nil {
		t.Fatalf("failed: %v", err)
	}
	return c
}

func np(t *testing.T, r, theta float64) point.Polar {
	t.Helper()
	p, err := point.NewPolar(r, theta)
	if err != nil {
		t.Fatalf("failed: %v", err)
	}
	return p
}

func TestDistance(t *testing.T) {
	for _, tc := range []struct {
		a, b point.Point
		d    float64
	}{
		{nc(t, 0, 0), nc(t, 3, 4), 5},
		{nc(t, 3, 4), nc(t, 0, 0), 5},
		{nc(t, 1, 1), nc(t, 1, 1), 0},
		{nc(t, -1, -1), nc(t, 2, 3), 5},
		{nc(t, 0, 0), np(t, 5, 0), 5},
	} {
		if got, want := point.Distance(tc.a, tc.b), tc.d; math.Abs(got-want) > 1e-12 {
			t.Errorf("%v to %v: got %v, want %v", tc.a, tc.b, got, want)
		}
	}
}

func TestMagnitudeAndAngle(t *testing.T) {
	for _, tc := range []struct {
		p          point.Point
		mag, angle float64
	}{
		{nc(t, 3, 4), 5, math.Atan2(4, 3)},
		{nc(t, 1, 1), math.Sqrt2, math.Pi / 4},
		{nc(t, -1, 0), 1, math.Pi},
		{nc(t, 0, -2), 2, -math.Pi / 2},
		{np(t, 2, math.Pi/6), 2, math.Pi / 6},
		{np(t, 1, math.Pi + math.Pi/2), 1, -math.Pi / 2},
	} {
		if got, want := tc.p.Magnitude(), tc.mag; math.Abs(got-want) > 1e-12 {
			t.Errorf("%v: got %v, want %v", tc.p, got, want)
		}
		if got, want := tc.p.Angle(), tc.angle; math.Abs(got-want) > 1e-12 {
			t.Errorf("%v: got %v, want %v", tc.p, got, want)
		}
	}
}

func TestEqual(t *testing.T) {
	cart := nc(t, 1, 1)
	polar := np(t, math.Sqrt2, math.Pi/4)

	// The same location in different representations compares equal.
	if !point.Equal(cart, polar) {
		t.Errorf("expected %v and %v to be equal", cart, polar)
	}
	if !point.Equal(cart, cart) {
		t.Errorf("expected %v to equal itself", cart)
	}
	if point.Equal(cart, nc(t, 1, 1.000001)) {
		t.Errorf("expected points to differ")
	}
	if !point.Equal(nc(t, 0, 0), nc(t, 0, point.Epsilon/10)) {
		t.Errorf("expected points within epsilon to be equal")
	}
}

func TestNonFinite(t *testing.T) {
	var nfErr *point.NonFiniteError
	for _, tc := range []struct{ x, y float64 }{
		{math.NaN(), 0},
		{0, math.NaN()},
		{math.Inf(1), 0},
		{0, math.Inf(-1)},
	} {
		if _, err := point.NewCartesian(tc.x, tc.y); err == nil {
			t.Errorf("(%v, %v): failed to return an error", tc.x, tc.y)
		} else if !errors.As(err, &nfErr) {
			t.Errorf("(%v, %v): wrong error type: %T", tc.x, tc.y, err)
		}
		if _, err := point.NewPolar(tc.x, tc.y); err == nil {
			t.Errorf("(%v, %v): failed to return an error", tc.x, tc.y)
		}
	}
	if _, err := point.NewPolar(-1, 0); err == nil {
		t.Errorf("failed to return an error for a negative radius")
	}
}

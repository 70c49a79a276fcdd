// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package date_test

import (
	"slices"
	"strings"
	"testing"

	"cloudeng.io/adt/date"
)

func TestListParse(t *testing.T) {
	var dl date.List
	if err := dl.Parse("20/05/2022, 01/01/2000, Date(2024, 2, 29)"); err != nil {
		t.Fatalf("failed: %v", err)
	}
	if got, want := dl, (date.List{nd(2022, 5, 20), nd(2000, 1, 1), nd(2024, 2, 29)}); !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := dl.String(), "20/05/2022, 01/01/2000, 29/02/2024"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !dl.Contains(nd(2000, 1, 1)) {
		t.Errorf("expected %v to be in the list", nd(2000, 1, 1))
	}
	if dl.Contains(nd(2000, 1, 2)) {
		t.Errorf("expected %v to not be in the list", nd(2000, 1, 2))
	}

	if err := dl.Parse(""); err != nil {
		t.Errorf("failed: %v", err)
	}
}

func TestListParseErrors(t *testing.T) {
	var dl date.List
	err := dl.Parse("20/05/2022, 30/02/2022, 29/02/2021")
	if err == nil {
		t.Fatalf("failed to return an error")
	}
	// Both failing entries are reported.
	for _, want := range []string{"30", "29"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %v", err, want)
		}
	}
	if len(dl) != 0 {
		t.Errorf("list modified on error: %v", dl)
	}
}

func TestListSorted(t *testing.T) {
	dl := date.List{nd(2022, 5, 20), nd(2000, 1, 1), nd(2022, 5, 19), nd(1642, 12, 25)}
	sorted := dl.Sorted()
	if got, want := sorted, (date.List{nd(1642, 12, 25), nd(2000, 1, 1), nd(2022, 5, 19), nd(2022, 5, 20)}); !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	// The receiver is left unchanged.
	if got, want := dl[0], nd(2022, 5, 20); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caldate_test

import (
	"slices"
	"testing"

	"cloudeng.io/caldate"
)

func TestCompare(t *testing.T) {
	base := nd(8, 6, 2022)
	for _, later := range []caldate.Date{
		nd(9, 6, 2022),
		nd(8, 7, 2022),
		nd(8, 6, 2023),
		nd(1, 1, 2023),
		nd(31, 5, 2023),
	} {
		if !base.Before(later) {
			t.Errorf("%v is not before %v", base, later)
		}
		if !later.After(base) {
			t.Errorf("%v is not after %v", later, base)
		}
		if later.Before(base) || base.After(later) {
			t.Errorf("%v and %v are misordered", base, later)
		}
		if base.Equal(later) || later.Equal(base) {
			t.Errorf("%v and %v are equal", base, later)
		}
		if got, want := base.Compare(later), -1; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if got, want := caldate.Compare(later, base), 1; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}

	same := nd(8, 6, 2022)
	if !base.Equal(same) || base != same {
		t.Errorf("%v and %v are not equal", base, same)
	}
	if base.Before(same) || base.After(same) {
		t.Errorf("%v and %v are misordered", base, same)
	}
	if got, want := base.Compare(same), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !caldate.Default().Before(nd(1, 1, 1901)) {
		t.Errorf("zero value is not before 1/1/1901")
	}
}

func TestCompareAgrees(t *testing.T) {
	d := nd(25, 12, 1999)
	for i := 0; i < 500; i++ {
		next := d.AddDays(i)
		if got, want := next.Compare(d), min(i, 1); got != want {
			t.Fatalf("%v, %v: got %v, want %v", next, d, got, want)
		}
		if got, want := next.Sub(d) > 0, next.After(d); got != want {
			t.Fatalf("%v, %v: got %v, want %v", next, d, got, want)
		}
		if got, want := next.Equal(d), next == d; got != want {
			t.Fatalf("%v, %v: got %v, want %v", next, d, got, want)
		}
	}
}

func TestMinMax(t *testing.T) {
	dates := []caldate.Date{
		nd(8, 6, 2022),
		nd(28, 2, 1904),
		nd(1, 1, 2500),
		nd(9, 6, 2022),
	}
	if got, want := caldate.Min(dates...), nd(28, 2, 1904); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := caldate.Max(dates...), nd(1, 1, 2500); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := caldate.Min(), caldate.Default(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := caldate.Max(), caldate.Default(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	slices.SortFunc(dates, caldate.Compare)
	if got, want := dates, []caldate.Date{
		nd(28, 2, 1904),
		nd(8, 6, 2022),
		nd(9, 6, 2022),
		nd(1, 1, 2500),
	}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caldate_test

import (
	"context"
	"testing"

	"cloudeng.io/caldate"
	"cloudeng.io/sync/errgroup"
)

func checkRandom(t *testing.T, d caldate.Date, minYear, maxYear int) {
	t.Helper()
	if y := d.Year(); y < minYear || y > maxYear {
		t.Errorf("%v: year %v out of range [%v, %v]", d, y, minYear, maxYear)
	}
	if err := d.Validate(); err != nil {
		t.Errorf("%v: %v", d, err)
	}
}

func TestRandom(t *testing.T) {
	years := map[int]bool{}
	months := map[int]bool{}
	for i := 0; i < 100000; i++ {
		d := caldate.Random()
		checkRandom(t, d, caldate.RandMinYear, caldate.RandMaxYear)
		years[d.Year()] = true
		months[d.Month()] = true
	}
	if got, want := len(years), caldate.RandMaxYear-caldate.RandMinYear+1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := len(months), 12; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRandomConcurrent(t *testing.T) {
	var g errgroup.T
	results := make([][]caldate.Date, 8)
	for i := range results {
		g.Go(func() error {
			for j := 0; j < 10000; j++ {
				results[i] = append(results[i], caldate.Random())
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	for _, r := range results {
		if got, want := len(r), 10000; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		for _, d := range r {
			checkRandom(t, d, caldate.RandMinYear, caldate.RandMaxYear)
		}
	}
}

func TestGenerator(t *testing.T) {
	a, b := caldate.NewGenerator(42), caldate.NewGenerator(42)
	for i := 0; i < 1000; i++ {
		if got, want := a.Date(), b.Date(); got != want {
			t.Fatalf("%v: got %v, want %v", i, got, want)
		}
	}

	g := caldate.NewGenerator(1, caldate.WithYearRange(2000, 2003))
	minYear, maxYear := g.YearRange()
	if minYear != 2000 || maxYear != 2003 {
		t.Errorf("got %v..%v", minYear, maxYear)
	}
	leapDays := 0
	for i := 0; i < 10000; i++ {
		d := g.Date()
		checkRandom(t, d, 2000, 2003)
		if d.Month() == 2 && d.Day() == 29 {
			leapDays++
		}
	}
	if leapDays == 0 {
		t.Errorf("no 29th of February generated")
	}

	for _, tc := range []struct {
		minYear, maxYear int
		wantMin, wantMax int
	}{
		{1800, 1950, 1901, 1950},
		{2000, 1990, 2000, 2000},
		{2022, 2022, 2022, 2022},
	} {
		g := caldate.NewGenerator(1, caldate.WithYearRange(tc.minYear, tc.maxYear))
		minYear, maxYear := g.YearRange()
		if minYear != tc.wantMin || maxYear != tc.wantMax {
			t.Errorf("got %v..%v, want %v..%v", minYear, maxYear, tc.wantMin, tc.wantMax)
		}
		for i := 0; i < 100; i++ {
			checkRandom(t, g.Date(), tc.wantMin, tc.wantMax)
		}
	}
}

func TestGeneratorContext(t *testing.T) {
	ctx := context.Background()
	if caldate.GeneratorFromContext(ctx) != nil {
		t.Errorf("unexpected generator")
	}
	checkRandom(t, caldate.RandomFromContext(ctx), caldate.RandMinYear, caldate.RandMaxYear)

	g := caldate.NewGenerator(7, caldate.WithYearRange(2100, 2100))
	ctx = caldate.ContextWithGenerator(ctx, g)
	if got, want := caldate.GeneratorFromContext(ctx), g; got != want {
		t.Errorf("got %p, want %p", got, want)
	}
	ref := caldate.NewGenerator(7, caldate.WithYearRange(2100, 2100))
	for i := 0; i < 100; i++ {
		if got, want := caldate.RandomFromContext(ctx), ref.Date(); got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

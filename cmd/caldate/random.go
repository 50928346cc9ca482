// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"math/rand/v2"

	"cloudeng.io/caldate"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/sync/errgroup"
)

type randomFlags struct {
	Count       int   `subcmd:"count,0,'number of dates to generate, defaults to 1'"`
	Concurrency int   `subcmd:"concurrency,0,'number of goroutines to generate dates with, defaults to 1'"`
	Seed        int64 `subcmd:"seed,0,'seed for the random generators, the output is repeatable for a given seed and concurrency'"`
	MinYear     int   `subcmd:"min-year,0,'earliest year to generate'"`
	MaxYear     int   `subcmd:"max-year,0,'latest year to generate'"`
}

// newShardContext returns a context for generating one shard of dates.
// A seeded or range restricted generator is stored in the context,
// otherwise caldate.Random's pool of generators is used.
func newShardContext(ctx context.Context, cfg RandomConfig, seed int64, shard int) context.Context {
	if seed == 0 && cfg.isDefaultRange() {
		return ctx
	}
	s := uint64(seed) + uint64(shard)
	if seed == 0 {
		s = rand.Uint64()
	}
	ctxlog.Logger(ctx).Debug("random generator", "shard", shard, "seed", s, "min_year", cfg.MinYear, "max_year", cfg.MaxYear)
	g := caldate.NewGenerator(s, caldate.WithYearRange(cfg.MinYear, cfg.MaxYear))
	return caldate.ContextWithGenerator(ctx, g)
}

func generateDates(ctx context.Context, cfg RandomConfig, seed int64) ([][]caldate.Date, error) {
	shards := make([][]caldate.Date, cfg.Concurrency)
	g, ctx := errgroup.WithContext(ctx)
	for i := range shards {
		n := cfg.Count / cfg.Concurrency
		if i < cfg.Count%cfg.Concurrency {
			n++
		}
		sctx := newShardContext(ctx, cfg, seed, i)
		g.Go(func() error {
			dates := make([]caldate.Date, 0, n)
			for range n {
				if err := sctx.Err(); err != nil {
					return err
				}
				dates = append(dates, caldate.RandomFromContext(sctx))
			}
			shards[i] = dates
			return nil
		})
	}
	return shards, g.Wait()
}

func (a *app) random(ctx context.Context, values any, _ []string) error {
	fv := values.(*randomFlags)
	cfg, err := a.config.Random.merge(fv)
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Info("generating random dates", "count", cfg.Count, "concurrency", cfg.Concurrency)
	shards, err := generateDates(ctx, cfg, fv.Seed)
	if err != nil {
		return err
	}
	for _, dates := range shards {
		for _, d := range dates {
			fmt.Fprintln(a.out, d)
		}
	}
	return nil
}

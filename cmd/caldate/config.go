// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"cloudeng.io/caldate"
	"cloudeng.io/cmdutil"
)

// Config represents the contents of the yaml file named by --config.
//
//	logging:
//	  level: 3
//	  format: text
//	random:
//	  min_year: 2000
//	  max_year: 2030
//	  count: 10
//	  concurrency: 4
type Config struct {
	Logging cmdutil.LoggingConfig `yaml:"logging" cmd:"logging configuration, overrides the logging flags"`
	Random  RandomConfig          `yaml:"random" cmd:"defaults for the random command"`
}

// RandomConfig represents the defaults for the random command, each is
// overridden by the corresponding flag when that flag is non-zero.
type RandomConfig struct {
	MinYear     int `yaml:"min_year" cmd:"earliest year to generate"`
	MaxYear     int `yaml:"max_year" cmd:"latest year to generate"`
	Count       int `yaml:"count" cmd:"number of dates to generate"`
	Concurrency int `yaml:"concurrency" cmd:"number of goroutines to generate dates with"`
}

func orDefault(vals ...int) int {
	for _, v := range vals {
		if v != 0 {
			return v
		}
	}
	return 0
}

// merge returns the settings to use given the command line flags,
// falling back to the configuration file and then the package defaults.
func (rc RandomConfig) merge(fv *randomFlags) (RandomConfig, error) {
	m := RandomConfig{
		MinYear:     orDefault(fv.MinYear, rc.MinYear, caldate.RandMinYear),
		MaxYear:     orDefault(fv.MaxYear, rc.MaxYear, caldate.RandMaxYear),
		Count:       orDefault(fv.Count, rc.Count, 1),
		Concurrency: orDefault(fv.Concurrency, rc.Concurrency, 1),
	}
	switch {
	case m.MinYear <= caldate.BaseYear:
		return m, fmt.Errorf("minimum year must be greater than %v: %v", caldate.BaseYear, m.MinYear)
	case m.MaxYear < m.MinYear:
		return m, fmt.Errorf("maximum year %v is before the minimum year %v", m.MaxYear, m.MinYear)
	case m.Count < 0:
		return m, fmt.Errorf("count must not be negative: %v", m.Count)
	case m.Concurrency < 1:
		return m, fmt.Errorf("concurrency must be at least 1: %v", m.Concurrency)
	}
	m.Concurrency = min(m.Concurrency, max(m.Count, 1))
	return m, nil
}

func (rc RandomConfig) isDefaultRange() bool {
	return rc.MinYear == caldate.RandMinYear && rc.MaxYear == caldate.RandMaxYear
}

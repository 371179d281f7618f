// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ratelimit

import "github.com/danielhkuo/pollgate/cliparse"

// Demo mode loosens every cap by this factor.
const demoMultiplier = 100

// LimitsFromConfig maps configuration onto effective limits, applying the
// demo-mode relaxation. Demo mode never touches proof-of-work difficulty or
// the replay window.
func LimitsFromConfig(cfg cliparse.Config) Limits {
	l := Limits{
		IPMax10Min:         cfg.IPMax10Min,
		IPMaxDay:           cfg.IPMaxDay,
		SessionMinInterval: cfg.SessionMinInterval,
		SessionMaxDay:      cfg.SessionMaxDay,
	}
	if cfg.DemoMode {
		l.IPMax10Min *= demoMultiplier
		l.IPMaxDay *= demoMultiplier
		l.SessionMaxDay *= demoMultiplier
		l.SessionMinInterval /= demoMultiplier
	}
	return l
}

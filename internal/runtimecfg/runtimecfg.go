package runtimecfg

import (
	"context"
	"errors"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SiteConfig is operator-tunable configuration kept in Postgres rather than
// the environment. Nil fields mean "not set"; consumers apply their own
// defaults (see ordering.ResolveCutoffHour).
type SiteConfig struct {
	AddonOrderCutoffHour *float64
}

type loadState int

const (
	stateIdle loadState = iota
	stateLoading
	stateLoaded
	stateFailed
)

// Provider loads site config on first use and caches it. While a load is in
// flight, concurrent callers get the zero config instead of a second query;
// defaults make the zero config safe.
type Provider struct {
	DB *pgxpool.Pool

	mu    sync.Mutex
	state loadState
	cfg   SiteConfig
}

func (p *Provider) Ensure(ctx context.Context) (SiteConfig, error) {
	p.mu.Lock()
	switch p.state {
	case stateLoaded:
		cfg := p.cfg
		p.mu.Unlock()
		return cfg, nil
	case stateLoading:
		p.mu.Unlock()
		return SiteConfig{}, nil
	}
	p.state = stateLoading
	p.mu.Unlock()

	cfg, err := p.load(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		p.state = stateFailed
		return SiteConfig{}, err
	}
	p.state = stateLoaded
	p.cfg = cfg
	return cfg, nil
}

// Invalidate forces a reload on the next Ensure, e.g. after an admin edit.
func (p *Provider) Invalidate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = stateIdle
	p.cfg = SiteConfig{}
}

func (p *Provider) load(ctx context.Context) (SiteConfig, error) {
	var cfg SiteConfig
	err := p.DB.QueryRow(ctx, `SELECT addon_order_cutoff_hour FROM site_config LIMIT 1`).
		Scan(&cfg.AddonOrderCutoffHour)
	if errors.Is(err, pgx.ErrNoRows) {
		return SiteConfig{}, nil // no row yet: all defaults
	}
	if err != nil {
		return SiteConfig{}, err
	}
	return cfg, nil
}

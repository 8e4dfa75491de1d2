// Package consistencymgr ties the consistency.Mode and zookie layer to
// the tuple store's revision counter (spec §4.6): it decides whether a
// request may proceed immediately, must bounded-wait for a revision to
// arrive, or must bypass caching altogether, and it turns every write's
// allocated revision into a zookie for the caller.
package consistencymgr

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/LerianStudio/midaz/v3/components/rebac/internal/domain/consistency"
	"github.com/LerianStudio/midaz/v3/pkg/merrors"
)

// RevisionSource is the slice of tuple.Store the manager needs —
// satisfied by a guardedstore.Store so breaker/store failures surface
// through the same errors as everywhere else.
type RevisionSource interface {
	CurrentRevision(ctx context.Context, tenant string) (int64, error)
}

// Config tunes the bounded wait (spec §4.6 "default low — hundreds of ms").
type Config struct {
	WaitDeadline  time.Duration
	InitialBackoff time.Duration
	MaxBackoff    time.Duration
}

// DefaultConfig returns spec defaults: a 300ms deadline, starting at
// 10ms and backing off exponentially up to 100ms between polls.
func DefaultConfig() Config {
	return Config{
		WaitDeadline:   300 * time.Millisecond,
		InitialBackoff: 10 * time.Millisecond,
		MaxBackoff:     100 * time.Millisecond,
	}
}

// Manager resolves a request's consistency.Mode against the tuple
// store's current revision and mints zookies for write responses.
type Manager struct {
	store  RevisionSource
	signer *consistency.Signer
	cfg    Config
}

// New builds a Manager. signer encodes/decodes the zookies this
// manager mints and resolves.
func New(store RevisionSource, signer *consistency.Signer, cfg Config) *Manager {
	if cfg.WaitDeadline <= 0 {
		cfg = DefaultConfig()
	}

	return &Manager{store: store, signer: signer, cfg: cfg}
}

// Resolve blocks, if necessary, until tenant's current revision
// satisfies mode, then returns that revision. For MINIMIZE_LATENCY it
// returns immediately with whatever revision is current (the value is
// informational only — callers must not treat it as a freshness
// floor). For AT_LEAST_AS_FRESH it bounded-waits for the store to reach
// min_rev, returning merrors.ConsistencyTimeoutError if the deadline
// elapses first. For FULLY_CONSISTENT it also returns the current
// revision; the caller is expected to bypass the cache entirely for
// this mode rather than use the returned revision as a floor.
func (m *Manager) Resolve(ctx context.Context, tenant string, mode consistency.Mode) (int64, error) {
	minRev, bounded := mode.IsAtLeastAsFresh()
	if !bounded {
		return m.store.CurrentRevision(ctx, tenant)
	}

	return m.waitFor(ctx, tenant, minRev)
}

func (m *Manager) waitFor(ctx context.Context, tenant string, minRev int64) (int64, error) {
	start := time.Now()

	waitCtx, cancel := context.WithTimeout(ctx, m.cfg.WaitDeadline)
	defer cancel()

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = m.cfg.InitialBackoff
	bo.MaxInterval = m.cfg.MaxBackoff
	bo.MaxElapsedTime = m.cfg.WaitDeadline

	var current int64

	operation := func() error {
		rev, err := m.store.CurrentRevision(waitCtx, tenant)
		if err != nil {
			return backoff.Permanent(err)
		}

		current = rev

		if rev >= minRev {
			return nil
		}

		return errNotYetCaughtUp
	}

	err := backoff.Retry(operation, backoff.WithContext(bo, waitCtx))
	if err == nil {
		return current, nil
	}

	if err == errNotYetCaughtUp || waitCtx.Err() != nil {
		return current, &merrors.ConsistencyTimeoutError{
			Tenant:            tenant,
			RequestedRevision: minRev,
			CurrentRevision:   current,
			ElapsedMs:         time.Since(start).Milliseconds(),
		}
	}

	return current, err
}

type sentinelError string

func (e sentinelError) Error() string { return string(e) }

const errNotYetCaughtUp = sentinelError("consistencymgr: revision not yet caught up")

// ZookieForWrite encodes the revision a write allocated into a zookie
// the caller can pipe into a subsequent read for read-your-writes
// semantics (spec §4.6 "Write path").
func (m *Manager) ZookieForWrite(tenant string, revision int64) string {
	return m.signer.Encode(tenant, revision)
}

// ModeFromZookie decodes token into an AT_LEAST_AS_FRESH mode pinned to
// the revision it carries, validating it belongs to tenant.
func (m *Manager) ModeFromZookie(tenant, token string) (consistency.Mode, error) {
	z, err := m.signer.Decode(token)
	if err != nil {
		return consistency.Mode{}, err
	}

	if z.Tenant != tenant {
		return consistency.Mode{}, &merrors.InvalidRequestError{Reason: "zookie tenant does not match request tenant"}
	}

	return consistency.AtLeastAsFresh(z.Revision), nil
}

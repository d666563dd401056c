// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/stoa-vault/models"
)

// DecryptedCache maps note ids to decrypted content for the current unlock.
// Entries are filled lazily on first access and all of them are dropped
// when the session locks.
type DecryptedCache struct {
	session *Session

	mu      sync.RWMutex
	entries map[string]string

	inflight singleflight.Group
}

// NewDecryptedCache creates a cache bound to session and registers its
// invalidation with [Session.OnLock].
func NewDecryptedCache(session *Session) *DecryptedCache {
	c := &DecryptedCache{
		session: session,
		entries: make(map[string]string),
	}
	session.OnLock(c.InvalidateAll)
	return c
}

// Get returns the plaintext of noteID. A cached value is returned without
// touching the cipher. Otherwise envelope is decrypted once, even when
// several goroutines ask for the same note at the same time, and the result
// is cached.
//
// While the session is Locked, or when it locks before the decrypt
// completes, Get reports ok=false and no error. Decryption failures are
// returned as errors wrapping ErrDecryption and are not cached.
//
// A shared decrypt is not bound to any single caller: a caller whose ctx is
// done gets ctx.Err() while the other waiters still receive the plaintext.
func (c *DecryptedCache) Get(ctx context.Context, noteID string, envelope models.Envelope) (string, bool, error) {
	if text, ok := c.lookup(noteID); ok {
		return text, true, nil
	}
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	kr, err := c.session.Keyring()
	if err != nil {
		return "", false, nil
	}
	epoch := kr.Epoch()
	decryptCtx := context.WithoutCancel(ctx)

	flight := c.inflight.DoChan(flightKey(epoch, noteID), func() (any, error) {
		if text, ok := c.lookup(noteID); ok {
			return text, nil
		}

		text, err := kr.Decrypt(decryptCtx, envelope)
		if err != nil {
			return nil, err
		}
		if !c.commit(epoch, noteID, text) {
			return nil, ErrNotInitialized
		}
		return text, nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return "", false, ctx.Err()
	case res = <-flight:
	}

	if errors.Is(res.Err, ErrNotInitialized) {
		return "", false, nil
	}
	if res.Err != nil {
		return "", false, res.Err
	}

	return res.Val.(string), true, nil
}

// Put stores plaintext for noteID, typically right after the note was
// saved. It does nothing while the session is Locked.
func (c *DecryptedCache) Put(noteID, plaintext string) {
	epoch, unlocked := c.session.unlockedEpoch()
	if !unlocked {
		return
	}
	c.commit(epoch, noteID, plaintext)
}

// Remove drops the entry of noteID.
func (c *DecryptedCache) Remove(noteID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, noteID)
}

// InvalidateAll drops every entry.
func (c *DecryptedCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
}

// Len returns the number of cached entries.
func (c *DecryptedCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// lookup serves an entry only while the session is Unlocked, so nothing is
// returned between the start of Logout and InvalidateAll.
func (c *DecryptedCache) lookup(noteID string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if _, unlocked := c.session.unlockedEpoch(); !unlocked {
		return "", false
	}
	text, ok := c.entries[noteID]
	return text, ok
}

// commit stores the entry only if the session is still in the unlock that
// produced it. The epoch is read under c.mu so a concurrent Logout either
// sees the entry in InvalidateAll or makes this check fail.
func (c *DecryptedCache) commit(epoch uint64, noteID, plaintext string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	current, unlocked := c.session.unlockedEpoch()
	if !unlocked || current != epoch {
		return false
	}
	c.entries[noteID] = plaintext
	return true
}

func flightKey(epoch uint64, noteID string) string {
	return strconv.FormatUint(epoch, 10) + "/" + noteID
}

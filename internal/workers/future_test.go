// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFuture_AwaitReturnsValue(t *testing.T) {
	f := Go(context.Background(), func(context.Context) (int, error) {
		return 42, nil
	})

	v, err := f.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestFuture_AwaitReturnsError(t *testing.T) {
	boom := errors.New("boom")
	f := Go(context.Background(), func(context.Context) (string, error) {
		return "", boom
	})

	_, err := f.Await(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestFuture_AwaitCancelled(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	f := Go(context.Background(), func(context.Context) (int, error) {
		<-release
		return 1, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	v, err := f.Await(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, v)
}

func TestFuture_PanicIsReported(t *testing.T) {
	f := Go(context.Background(), func(context.Context) (int, error) {
		panic("kaboom")
	})

	_, err := f.Await(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kaboom")
}

func TestFuture_DiscardDisposesLateValue(t *testing.T) {
	release := make(chan struct{})
	f := Go(context.Background(), func(context.Context) ([]byte, error) {
		<-release
		return []byte{1, 2, 3}, nil
	})

	disposed := make(chan []byte, 1)
	f.Discard(func(b []byte) { disposed <- b })
	close(release)

	select {
	case b := <-disposed:
		assert.Equal(t, []byte{1, 2, 3}, b)
	case <-time.After(time.Second):
		t.Fatal("dispose was not called")
	}
}

func TestFuture_DiscardSkipsFailedTask(t *testing.T) {
	f := Go(context.Background(), func(context.Context) ([]byte, error) {
		return nil, errors.New("failed")
	})

	called := make(chan struct{}, 1)
	f.Discard(func([]byte) { called <- struct{}{} })

	<-f.Done()
	select {
	case <-called:
		t.Fatal("dispose must not run for a failed task")
	case <-time.After(50 * time.Millisecond):
	}
}

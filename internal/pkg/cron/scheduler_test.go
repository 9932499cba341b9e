package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_RunOnce(t *testing.T) {
	s := NewScheduler()
	var calls int32
	s.AddJob("count", time.Hour, func(ctx context.Context) error {
		atomic.AddInt32(&calls, 1)
		return nil
	})
	s.AddJob("fail", time.Hour, func(ctx context.Context) error {
		atomic.AddInt32(&calls, 1)
		return errors.New("boom")
	})

	err := s.RunOnce(context.Background())
	assert.ErrorContains(t, err, "fail: boom")
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestScheduler_RecoversPanicsAndSkipsBadInterval(t *testing.T) {
	s := NewScheduler()
	s.AddJob("ignored", 0, func(ctx context.Context) error {
		t.Fatal("job with zero interval must not be registered")
		return nil
	})
	s.AddJob("panics", time.Hour, func(ctx context.Context) error {
		panic("kaboom")
	})

	err := s.RunOnce(context.Background())
	assert.ErrorContains(t, err, "panic: kaboom")
}

func TestScheduler_StopWithoutStart(t *testing.T) {
	s := NewScheduler()
	s.Stop()
}

func TestScheduler_StartRunsImmediatelyAndStops(t *testing.T) {
	s := NewScheduler()
	ran := make(chan struct{}, 1)
	s.AddJob("tick", time.Hour, func(ctx context.Context) error {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	})

	s.Start()
	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run on start")
	}
	s.Stop()
}

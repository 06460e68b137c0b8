package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"interviewmate/internal/store"

	"go.uber.org/zap"
)

var errWriteFailed = errors.New("write failed")

// flakyStore wraps a MemoryStore and can be told to fail writes.
type flakyStore struct {
	*store.MemoryStore
	failSet bool
	setKeys []string
}

func (f *flakyStore) Set(ctx context.Context, key string, value []byte) error {
	if f.failSet {
		return errWriteFailed
	}
	f.setKeys = append(f.setKeys, key)
	return f.MemoryStore.Set(ctx, key, value)
}

type fixture struct {
	store        *flakyStore
	achievements *AchievementRepository
	interviews   *InterviewRepository
	clock        *fakeClock
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	s := &flakyStore{MemoryStore: store.NewMemoryStore()}
	clock := &fakeClock{now: time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)}
	ach := NewAchievementRepository(s, zap.NewNop())
	return &fixture{
		store:        s,
		achievements: ach,
		interviews:   NewInterviewRepository(s, ach, zap.NewNop(), WithClock(clock.Now)),
		clock:        clock,
	}
}

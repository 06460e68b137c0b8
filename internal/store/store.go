// Package store holds the flat key-value byte store every record lives in.
// Values are JSON documents under fixed keys; there are no cross-key
// transactions, so each key is individually valid or absent.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"

	"go.uber.org/zap"
)

// persisted keys
const (
	KeySession      = "mockUser"
	KeyInterviews   = "interviews"
	KeyTheme        = "theme"
	KeyProfile      = "userProfile"
	KeyAchievements = "achievements"
	KeyStreak       = "streak"
	KeyChecklist    = "checklist"
)

// Keys lists every key the application writes.
func Keys() []string {
	return []string{KeySession, KeyInterviews, KeyTheme, KeyProfile, KeyAchievements, KeyStreak, KeyChecklist}
}

type Store interface {
	// Get returns the stored bytes and whether the key exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// LoadJSON decodes the value under key into out, which must be a pointer. A missing key, a read
// failure or malformed JSON all report false; out is left untouched in
// those cases so the caller can fall back to defaults.
func LoadJSON(ctx context.Context, s Store, key string, out any, logger *zap.Logger) bool {
	data, ok, err := s.Get(ctx, key)
	if err != nil {
		if logger != nil {
			logger.Warn("store read failed, using defaults", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if !ok {
		return false
	}

	// decode into a fresh value so a half-decoded document never leaks into out
	target := reflect.New(reflect.TypeOf(out).Elem())
	if err := json.Unmarshal(data, target.Interface()); err != nil {
		if logger != nil {
			logger.Warn("malformed stored value, using defaults", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	reflect.ValueOf(out).Elem().Set(target.Elem())
	return true
}

func SaveJSON(ctx context.Context, s Store, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.Set(ctx, key, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

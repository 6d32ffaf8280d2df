// Package audit records operator activity best effort. Entries land in a
// Redis list when a client is configured and are silently dropped otherwise;
// auditing never affects the outcome of the operation it describes.
package audit

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	activityKey = "kantin:activity"
	maxEntries  = 500
)

// Entry is one activity record.
type Entry struct {
	Timestamp string `json:"timestamp"`
	User      string `json:"user"`
	Action    string `json:"action"`
	Detail    string `json:"detail"`
}

// Logger writes activity entries. A nil Redis client disables it.
type Logger struct {
	rdb *redis.Client
}

// New creates a logger. rdb may be nil.
func New(rdb *redis.Client) *Logger {
	return &Logger{rdb: rdb}
}

// Log records one entry. Failures are logged and swallowed.
func (l *Logger) Log(ctx context.Context, user, action, detail string) {
	if l == nil || l.rdb == nil {
		return
	}
	entry := Entry{
		Timestamp: time.Now().Format("2006-01-02 15:04:05"),
		User:      user,
		Action:    action,
		Detail:    detail,
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	pipe := l.rdb.Pipeline()
	pipe.LPush(ctx, activityKey, data)
	pipe.LTrim(ctx, activityKey, 0, maxEntries-1)
	if _, err := pipe.Exec(ctx); err != nil {
		log.Printf("activity log write failed: %v", err)
	}
}

// Recent returns up to limit most recent entries, newest first.
func (l *Logger) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if l == nil || l.rdb == nil {
		return []Entry{}, nil
	}
	if limit <= 0 {
		limit = 10
	}
	raw, err := l.rdb.LRange(ctx, activityKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(raw))
	for _, item := range raw {
		var e Entry
		if err := json.Unmarshal([]byte(item), &e); err != nil {
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

package notify

import (
	"context"
	"sync"

	"taskboard/internal/logger"
)

// Sink receives the user-facing outcome of an intent.
type Sink interface {
	Success(ctx context.Context, message string)
	Error(ctx context.Context, message string)
}

// LogSink writes notifications to the structured log.
type LogSink struct {
	log *logger.Logger
}

func NewLogSink(log *logger.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Success(ctx context.Context, message string) {
	s.log.Infow(message, "notification", "success")
}

func (s *LogSink) Error(ctx context.Context, message string) {
	s.log.Warnw(message, "notification", "error")
}

// Entry is a notification captured by a Recorder.
type Entry struct {
	Level   string
	Message string
}

// Recorder keeps notifications in memory. Used by tests.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

func (r *Recorder) Success(ctx context.Context, message string) {
	r.add("success", message)
}

func (r *Recorder) Error(ctx context.Context, message string) {
	r.add("error", message)
}

func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Entry(nil), r.entries...)
}

func (r *Recorder) add(level, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Level: level, Message: message})
}

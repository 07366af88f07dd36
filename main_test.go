package main

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/container-desk/cdesk/pkg/logbuffer"
	"github.com/stretchr/testify/require"
)

type fakeStreamer struct {
	attempts atomic.Int64
	lines    string
	err      error
}

func (s *fakeStreamer) StreamLogs(ctx context.Context, out io.Writer, follow bool) error {
	s.attempts.Add(1)
	if s.lines != "" {
		_, _ = io.WriteString(out, s.lines)
	}
	return s.err
}

func TestCaptureLogsReattaches(t *testing.T) {
	streamer := &fakeStreamer{lines: "line\n", err: errors.New("stream closed")}
	logs := logbuffer.New(8)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		captureLogs(ctx, streamer, logs, time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return streamer.attempts.Load() >= 3
	}, time.Second, time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("captureLogs did not stop on cancellation")
	}

	require.NotEmpty(t, logs.Lines())
}

func TestCaptureLogsStopsWhenCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	streamer := &fakeStreamer{err: context.Canceled}
	done := make(chan struct{})
	go func() {
		captureLogs(ctx, streamer, logbuffer.New(8), time.Hour)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("captureLogs did not observe cancellation")
	}
}

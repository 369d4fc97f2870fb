package watcher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDebouncerBatchesBurstIntoOneCall(t *testing.T) {
	d := newDebouncer(20*time.Millisecond, zap.NewNop())
	defer d.stop()

	calls := make(chan []string, 4)
	handler := func(changed []string) error {
		calls <- changed
		return nil
	}

	// A save burst: repeated events for one file plus a second file.
	for i := 0; i < 3; i++ {
		d.add(FileChangeEvent{Path: "a.ts", Operation: "WRITE", Timestamp: time.Now()}, handler)
	}
	d.add(FileChangeEvent{Path: "b.ts", Operation: "WRITE", Timestamp: time.Now()}, handler)

	select {
	case changed := <-calls:
		assert.ElementsMatch(t, []string{"a.ts", "b.ts"}, changed)
	case <-time.After(time.Second):
		t.Fatal("handler was not invoked")
	}

	// The burst collapses into exactly one invocation.
	select {
	case changed := <-calls:
		t.Fatalf("unexpected second handler call with %v", changed)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestDebouncerResetsTimerPerEvent(t *testing.T) {
	d := newDebouncer(50*time.Millisecond, zap.NewNop())
	defer d.stop()

	calls := make(chan []string, 2)
	handler := func(changed []string) error {
		calls <- changed
		return nil
	}

	d.add(FileChangeEvent{Path: "a.ts", Operation: "WRITE", Timestamp: time.Now()}, handler)
	time.Sleep(25 * time.Millisecond)
	d.add(FileChangeEvent{Path: "b.ts", Operation: "WRITE", Timestamp: time.Now()}, handler)

	// The first event alone must not have flushed yet: the second add
	// restarted the delay.
	select {
	case changed := <-calls:
		require.Len(t, changed, 2)
	case <-time.After(time.Second):
		t.Fatal("handler was not invoked")
	}
}

func TestDebouncerFlushWithoutEventsIsNoop(t *testing.T) {
	d := newDebouncer(10*time.Millisecond, zap.NewNop())
	defer d.stop()

	called := false
	d.flush(func([]string) error {
		called = true
		return nil
	})
	assert.False(t, called)
}

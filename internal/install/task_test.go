package install

import (
	"context"
	"testing"
	"time"
)

func TestTaskResult(t *testing.T) {
	task := Go(func() int { return 42 })
	if got := task.Result(); got != 42 {
		t.Fatalf("Result() = %d, want 42", got)
	}
	select {
	case <-task.Done():
	default:
		t.Fatal("expected Done to be closed")
	}
}

func TestTaskWaitStopsWaitingOnContext(t *testing.T) {
	release := make(chan struct{})
	finished := make(chan struct{})
	task := Go(func() string {
		<-release
		close(finished)
		return "done"
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if _, err := task.Wait(ctx); err == nil {
		t.Fatal("expected context error")
	}

	close(release)
	got, err := task.Wait(context.Background())
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if got != "done" {
		t.Fatalf("Wait() = %q, want done", got)
	}
	<-finished
}

package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/thejurists/site-api/internal/core/domain"
)

type recordingNotifier struct {
	mu   sync.Mutex
	seen []uint64
	fail map[uint64]bool
}

func (n *recordingNotifier) Notify(_ context.Context, lead domain.ContactFormSubmission) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.seen = append(n.seen, lead.ID)
	if n.fail[lead.ID] {
		return errors.New("smtp down")
	}
	return nil
}

func (n *recordingNotifier) ids() []uint64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]uint64(nil), n.seen...)
}

type resultCounter struct {
	mu     sync.Mutex
	counts map[string]int
}

func (c *resultCounter) observe(result string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[result]++
}

func (c *resultCounter) get(result string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[result]
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met before deadline")
}

func TestDispatcher_DeliversInOrderPerSubmitter(t *testing.T) {
	notifier := &recordingNotifier{fail: map[uint64]bool{2: true}}
	counter := &resultCounter{counts: map[string]int{}}

	d := NewDispatcher(3, notifier, zerolog.Nop())
	d.OnResult(counter.observe)

	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)

	for id := uint64(1); id <= 5; id++ {
		d.Publish(domain.ContactFormSubmission{ID: id, Email: "Same@Example.com"})
	}

	waitFor(t, func() bool { return len(notifier.ids()) == 5 })
	cancel()
	d.Wait()

	got := notifier.ids()
	for i, id := range got {
		if id != uint64(i+1) {
			t.Fatalf("leads from one submitter must stay ordered, got %v", got)
		}
	}
	if counter.get(ResultDelivered) != 4 || counter.get(ResultFailed) != 1 {
		t.Fatalf("unexpected results %v", counter.counts)
	}
}

func TestDispatcher_PublishNeverBlocks(t *testing.T) {
	counter := &resultCounter{counts: map[string]int{}}

	d := NewDispatcher(1, &recordingNotifier{}, zerolog.Nop())
	d.OnResult(counter.observe)

	// Without workers the single buffer fills up and the rest are dropped.
	done := make(chan struct{})
	go func() {
		for i := 0; i < channelBuffer+10; i++ {
			d.Publish(domain.ContactFormSubmission{ID: uint64(i + 1), Email: "a@b.c"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Publish blocked on a full queue")
	}
	if counter.get(ResultDropped) != 10 {
		t.Fatalf("expected 10 dropped leads, got %d", counter.get(ResultDropped))
	}
}

func TestDispatcher_ShardIndexStable(t *testing.T) {
	d := NewDispatcher(0, &recordingNotifier{}, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
	if d.shardIndex("Ravi@Example.com") != d.shardIndex("ravi@example.com") {
		t.Fatalf("shard must ignore email case")
	}
}

package ingest

import (
	"fmt"
	"sync"
	"testing"

	"github.com/jonesrussell/trader-pulse/internal/domain"
)

func TestCollectorDeduplicates(t *testing.T) {
	c := NewCollector()

	first := &domain.Post{ID: "1", Username: "a", Body: "first"}
	dup := &domain.Post{ID: "1", Username: "b", Body: "second"}

	if !c.Add(first) {
		t.Fatal("first insert rejected")
	}
	if c.Add(dup) {
		t.Error("duplicate id accepted")
	}

	posts := c.Posts()
	if len(posts) != 1 {
		t.Fatalf("expected 1 post, got %d", len(posts))
	}
	// First writer wins.
	if posts[0].Body != "first" {
		t.Errorf("duplicate overwrote original: %q", posts[0].Body)
	}
}

func TestCollectorKeepsPostsWithoutID(t *testing.T) {
	c := NewCollector()
	c.Add(&domain.Post{Body: "a"})
	c.Add(&domain.Post{Body: "b"})

	if c.Len() != 2 {
		t.Errorf("posts without ids should not deduplicate, got %d", c.Len())
	}
}

func TestCollectorPreservesInsertionOrder(t *testing.T) {
	c := NewCollector()
	for i := 0; i < 10; i++ {
		c.Add(&domain.Post{ID: fmt.Sprintf("%d", i)})
	}

	for i, p := range c.Posts() {
		if p.ID != fmt.Sprintf("%d", i) {
			t.Fatalf("position %d holds id %s", i, p.ID)
		}
	}
}

func TestCollectorConcurrentWorkers(t *testing.T) {
	c := NewCollector()

	const workers = 8
	const perWorker = 100

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// Every worker submits the same ids; only one copy survives.
			for i := 0; i < perWorker; i++ {
				c.Add(&domain.Post{ID: fmt.Sprintf("post-%d", i)})
			}
		}()
	}
	wg.Wait()

	if c.Len() != perWorker {
		t.Errorf("expected %d unique posts, got %d", perWorker, c.Len())
	}
}

func TestAddBatchReportsAccepted(t *testing.T) {
	c := NewCollector()
	batch := []*domain.Post{
		{ID: "1"}, {ID: "2"}, {ID: "1"}, nil,
	}

	if accepted := c.AddBatch(batch); accepted != 2 {
		t.Errorf("accepted = %d, want 2", accepted)
	}
}

package feed

import (
	"context"
	"testing"
	"time"

	"github.com/elbekdesign/storefront/internal/domain/model"
)

func order(id, viewerID string, createdAt int64) model.Order {
	return model.Order{ID: id, ViewerID: viewerID, CreatedAt: createdAt, Status: model.OrderStatusPending}
}

func TestReplaceSortsDescending(t *testing.T) {
	hub := NewHub()
	hub.Replace([]model.Order{
		order("old", "v1", 100),
		order("new", "v1", 300),
		order("mid", "v2", 200),
	})

	snap := hub.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("expected 3 orders, got %d", len(snap))
	}
	if snap[0].ID != "new" || snap[1].ID != "mid" || snap[2].ID != "old" {
		t.Fatalf("unexpected order: %s %s %s", snap[0].ID, snap[1].ID, snap[2].ID)
	}
}

func TestReplaceIsFullReplacement(t *testing.T) {
	hub := NewHub()
	hub.Replace([]model.Order{order("a", "v1", 1), order("b", "v1", 2)})
	hub.Replace([]model.Order{order("c", "v2", 3)})

	snap := hub.Snapshot()
	if len(snap) != 1 || snap[0].ID != "c" {
		t.Fatalf("expected replacement snapshot, got %+v", snap)
	}
}

func TestSnapshotReturnsCopy(t *testing.T) {
	hub := NewHub()
	hub.Replace([]model.Order{order("a", "v1", 1)})

	snap := hub.Snapshot()
	snap[0].ID = "mutated"

	if hub.Snapshot()[0].ID != "a" {
		t.Fatal("expected hub snapshot to be isolated from caller mutation")
	}
}

func TestSubscribePrimedAndNotified(t *testing.T) {
	hub := NewHub()
	hub.Replace([]model.Order{order("a", "v1", 1)})

	ctx, cancelCtx := context.WithCancel(context.Background())
	defer cancelCtx()

	ch, cancel := hub.Subscribe(ctx)
	defer cancel()

	select {
	case snap := <-ch:
		if len(snap) != 1 || snap[0].ID != "a" {
			t.Fatalf("unexpected primed snapshot: %+v", snap)
		}
	case <-time.After(time.Second):
		t.Fatal("expected primed snapshot")
	}

	hub.Replace([]model.Order{order("a", "v1", 1), order("b", "v2", 2)})

	select {
	case snap := <-ch:
		if len(snap) != 2 || snap[0].ID != "b" {
			t.Fatalf("unexpected pushed snapshot: %+v", snap)
		}
	case <-time.After(time.Second):
		t.Fatal("expected pushed snapshot")
	}
}

func TestSlowSubscriberGetsLatestSnapshot(t *testing.T) {
	hub := NewHub()

	ch, cancel := hub.Subscribe(context.Background())
	defer cancel()
	<-ch // drain primed empty snapshot

	hub.Replace([]model.Order{order("first", "v1", 1)})
	hub.Replace([]model.Order{order("second", "v1", 2)})
	hub.Replace([]model.Order{order("third", "v1", 3)})

	select {
	case snap := <-ch:
		if len(snap) != 1 || snap[0].ID != "third" {
			t.Fatalf("expected latest snapshot, got %+v", snap)
		}
	case <-time.After(time.Second):
		t.Fatal("expected a snapshot")
	}
}

func TestSubscribeCancelClosesChannel(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Subscribe(context.Background())
	<-ch
	cancel()

	select {
	case _, ok := <-ch:
		if ok {
			t.Fatal("expected closed channel")
		}
	case <-time.After(time.Second):
		t.Fatal("expected channel to close")
	}

	// Replace after cancel must not panic.
	hub.Replace([]model.Order{order("a", "v1", 1)})
}

func TestVisibleToOwnScope(t *testing.T) {
	snapshot := []model.Order{
		order("a", "v1", 3),
		order("b", "v2", 2),
		order("c", "v1", 1),
	}

	own := VisibleTo(snapshot, model.Viewer{ID: "v1"}, ScopeOwn)
	if len(own) != 2 {
		t.Fatalf("expected 2 own orders, got %d", len(own))
	}
	for _, o := range own {
		if o.ViewerID != "v1" {
			t.Fatalf("foreign order leaked into own scope: %+v", o)
		}
	}

	all := VisibleTo(snapshot, model.Viewer{ID: "v1"}, ScopeAll)
	if len(all) != 3 {
		t.Fatalf("expected full snapshot, got %d", len(all))
	}
}

func TestVisibleToEmptyViewerMatchesNothing(t *testing.T) {
	snapshot := []model.Order{order("a", "v1", 1)}
	if got := VisibleTo(snapshot, model.Viewer{}, ScopeOwn); len(got) != 0 {
		t.Fatalf("expected no orders for empty viewer id, got %d", len(got))
	}
}

package store

import (
	"context"
	"testing"
	"time"
)

func setupTest(t *testing.T) *DB {
	t.Helper()
	db, err := OpenMemory()
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func at(ts string) func() time.Time {
	return func() time.Time {
		t, _ := time.Parse(timeLayout, ts)
		return t
	}
}

func TestStats(t *testing.T) {
	db := setupTest(t)
	ctx := context.Background()

	db.SetClock(at("2026-01-01 10:00:00"))
	db.RecordVisit(ctx, "aaaa", "agent", "/")
	db.SetClock(at("2026-01-09 08:00:00"))
	db.RecordVisit(ctx, "aaaa", "agent", "/")
	db.RecordVisit(ctx, "bbbb", "agent", "/")
	db.SetClock(at("2026-01-10 09:00:00"))
	db.RecordVisit(ctx, "cccc", "agent", "/privacy")

	db.RecordSectionView(ctx, "view-1", "about")
	db.RecordSectionView(ctx, "view-1", "about")
	db.RecordSectionView(ctx, "view-1", "skills")
	db.RecordSectionView(ctx, "view-2", "about")

	stats, err := db.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalVisitors != 4 {
		t.Errorf("total = %d, want 4", stats.TotalVisitors)
	}
	if stats.UniqueVisitors != 3 {
		t.Errorf("unique = %d, want 3", stats.UniqueVisitors)
	}
	if stats.VisitorsToday != 1 {
		t.Errorf("today = %d, want 1", stats.VisitorsToday)
	}
	if stats.VisitorsThisWeek != 3 {
		t.Errorf("week = %d, want 3", stats.VisitorsThisWeek)
	}
	if stats.LiveViews != 2 {
		t.Errorf("live views = %d, want 2", stats.LiveViews)
	}
	if len(stats.SectionReach) != 2 || stats.SectionReach[0] != (SectionCount{Section: "about", Views: 2}) {
		t.Errorf("reach = %+v", stats.SectionReach)
	}
	if len(stats.RecentVisitors) != 4 || stats.RecentVisitors[0].Path != "/privacy" {
		t.Errorf("recent = %+v", stats.RecentVisitors)
	}
}

func TestMessages(t *testing.T) {
	db := setupTest(t)
	ctx := context.Background()

	id, err := db.SaveMessage(ctx, Message{Name: "Ada", Email: "ada@example.com", Body: "hello"})
	if err != nil {
		t.Fatalf("SaveMessage: %v", err)
	}
	db.SaveMessage(ctx, Message{Name: "Bob", Email: "bob@example.com", Body: "hi"})
	if err := db.MarkDelivered(ctx, id); err != nil {
		t.Fatalf("MarkDelivered: %v", err)
	}

	msgs, err := db.Messages(ctx, 10)
	if err != nil {
		t.Fatalf("Messages: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("messages = %d, want 2", len(msgs))
	}
	if msgs[0].Name != "Bob" || msgs[0].Delivered {
		t.Errorf("newest = %+v", msgs[0])
	}
	if msgs[1].Name != "Ada" || !msgs[1].Delivered {
		t.Errorf("oldest = %+v", msgs[1])
	}
	if msgs[1].Timestamp.IsZero() {
		t.Error("timestamp not parsed")
	}
}

func TestCleanup(t *testing.T) {
	db := setupTest(t)
	ctx := context.Background()

	db.SetClock(at("2024-01-01 00:00:00"))
	db.RecordVisit(ctx, "old", "agent", "/")
	db.RecordSectionView(ctx, "v", "home")
	db.SetClock(at("2025-06-01 00:00:00"))
	db.RecordVisit(ctx, "new", "agent", "/")

	n, err := db.Cleanup(ctx)
	if err != nil {
		t.Fatalf("Cleanup: %v", err)
	}
	if n != 2 {
		t.Fatalf("deleted = %d, want 2", n)
	}
	visitors, _ := db.RecentVisitors(ctx, 10)
	if len(visitors) != 1 || visitors[0].HashedIP != "new" {
		t.Fatalf("remaining = %+v", visitors)
	}
}

package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := Migrate(db.Pool); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestCollectionWhitelist(t *testing.T) {
	db := newTestDB(t)
	if _, err := db.Collection("jobs; DROP TABLE jobs"); err == nil {
		t.Fatal("unknown collection accepted")
	}
	if _, err := db.Collection(Jobs); err != nil {
		t.Fatalf("known collection rejected: %v", err)
	}
}

func TestInsertGetReplaceDelete(t *testing.T) {
	db := newTestDB(t)
	col := db.MustCollection(Jobs)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	id, err := col.Insert(ctx, "a@x.com", now, []byte(`{"company":"Acme"}`))
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if id == "" {
		t.Fatal("empty id assigned")
	}

	doc, err := col.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if doc.OwnerEmail != "a@x.com" || string(doc.Body) != `{"company":"Acme"}` {
		t.Errorf("doc = %+v", doc)
	}
	if !doc.CreatedAt.Equal(now) {
		t.Errorf("createdAt = %v, want %v", doc.CreatedAt, now)
	}

	later := now.Add(time.Hour)
	if err := col.Replace(ctx, id, later, []byte(`{"company":"Acme Corp"}`)); err != nil {
		t.Fatalf("replace: %v", err)
	}
	doc, _ = col.Get(ctx, id)
	if string(doc.Body) != `{"company":"Acme Corp"}` || !doc.UpdatedAt.Equal(later) {
		t.Errorf("after replace: %+v", doc)
	}

	if err := col.Delete(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := col.Get(ctx, id); !errors.Is(err, ErrNoDocument) {
		t.Errorf("get after delete: %v, want ErrNoDocument", err)
	}
	if err := col.Delete(ctx, id); !errors.Is(err, ErrNoDocument) {
		t.Errorf("second delete: %v, want ErrNoDocument", err)
	}
}

func TestReplaceMissing(t *testing.T) {
	db := newTestDB(t)
	col := db.MustCollection(Companies)
	err := col.Replace(context.Background(), "nope", time.Now(), []byte(`{}`))
	if !errors.Is(err, ErrNoDocument) {
		t.Errorf("err = %v, want ErrNoDocument", err)
	}
}

func TestListByOwnerScopingAndOrder(t *testing.T) {
	db := newTestDB(t)
	col := db.MustCollection(Companies)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	oldID, _ := col.Insert(ctx, "a@x.com", base, []byte(`{"n":1}`))
	newID, _ := col.Insert(ctx, "a@x.com", base.Add(time.Minute), []byte(`{"n":2}`))
	if _, err := col.Insert(ctx, "b@x.com", base.Add(2*time.Minute), []byte(`{"n":3}`)); err != nil {
		t.Fatal(err)
	}

	docs, err := col.ListByOwner(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("len = %d, want 2", len(docs))
	}
	if docs[0].ID != newID || docs[1].ID != oldID {
		t.Errorf("order = [%s %s], want newest first", docs[0].ID, docs[1].ID)
	}
	for _, d := range docs {
		if d.OwnerEmail != "a@x.com" {
			t.Errorf("foreign owner leaked: %+v", d)
		}
	}

	// unknown owner: empty result, not an error
	docs, err = col.ListByOwner(ctx, "nobody@x.com")
	if err != nil || len(docs) != 0 {
		t.Errorf("docs=%v err=%v, want empty and nil", docs, err)
	}
}

func TestListByOwnerTieBreak(t *testing.T) {
	db := newTestDB(t)
	col := db.MustCollection(Jobs)
	ctx := context.Background()
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	first, _ := col.Insert(ctx, "a@x.com", at, []byte(`{"n":1}`))
	second, _ := col.Insert(ctx, "a@x.com", at, []byte(`{"n":2}`))

	docs, err := col.ListByOwner(ctx, "a@x.com")
	if err != nil {
		t.Fatal(err)
	}
	if docs[0].ID != second || docs[1].ID != first {
		t.Errorf("same-instant inserts: got [%s %s], want later insert first", docs[0].ID, docs[1].ID)
	}
}

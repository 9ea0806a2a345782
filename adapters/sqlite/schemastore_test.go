package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/artpar/varmsg/domain/msgtype"
	"github.com/artpar/varmsg/ports"
)

func newTestStore(t *testing.T) *SchemaStore {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.Migrate(); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	// Migrations are recorded; a second run is a no-op.
	if err := db.Migrate(); err != nil {
		t.Fatalf("second Migrate() error = %v", err)
	}
	return NewSchemaStore(db)
}

func testRecord(id, dataType string) msgtype.Record {
	return msgtype.Record{
		ID:         id,
		Type:       msgtype.New(dataType, "d41d8cd98f00b204e9800998ecf8427e", "float64 x\n"),
		ResolvedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestSchemaStore_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	rec := testRecord("id-1", "pkgA/Point")
	if err := s.Save(ctx, rec); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := s.Get(ctx, "pkgA/Point")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.ID != rec.ID {
		t.Errorf("ID = %q, want %q", got.ID, rec.ID)
	}
	if !got.Type.Equal(rec.Type) {
		t.Errorf("Type = %+v, want %+v", got.Type, rec.Type)
	}
	if got.Type.Definition != rec.Type.Definition {
		t.Errorf("Definition = %q, want %q", got.Type.Definition, rec.Type.Definition)
	}
	if !got.ResolvedAt.Equal(rec.ResolvedAt) {
		t.Errorf("ResolvedAt = %v, want %v", got.ResolvedAt, rec.ResolvedAt)
	}
}

func TestSchemaStore_GetMissing(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Get(context.Background(), "pkgA/Missing")
	if !errors.Is(err, ports.ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestSchemaStore_SaveReplaces(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	if err := s.Save(ctx, testRecord("id-1", "pkgA/Point")); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(ctx, testRecord("id-2", "pkgA/Point")); err != nil {
		t.Fatalf("replacing Save() error = %v", err)
	}

	got, err := s.Get(ctx, "pkgA/Point")
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != "id-2" {
		t.Errorf("ID after replace = %q, want id-2", got.ID)
	}

	recs, err := s.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 {
		t.Errorf("len(List()) = %d, want 1 after replacement", len(recs))
	}
}

func TestSchemaStore_ListOrdered(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	for _, dataType := range []string{"pkgB/Scene", "pkgA/Pose", "pkgA/Point"} {
		if err := s.Save(ctx, testRecord("id", dataType)); err != nil {
			t.Fatal(err)
		}
	}

	recs, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	want := []string{"pkgA/Point", "pkgA/Pose", "pkgB/Scene"}
	if len(recs) != len(want) {
		t.Fatalf("len(List()) = %d, want %d", len(recs), len(want))
	}
	for i, dataType := range want {
		if recs[i].Type.DataType != dataType {
			t.Errorf("List()[%d] = %q, want %q", i, recs[i].Type.DataType, dataType)
		}
	}
}

func TestSchemaStore_Delete(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	if err := s.Save(ctx, testRecord("id-1", "pkgA/Point")); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(ctx, "pkgA/Point"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := s.Get(ctx, "pkgA/Point"); !errors.Is(err, ports.ErrNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrNotFound", err)
	}
	if err := s.Delete(ctx, "pkgA/Point"); !errors.Is(err, ports.ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
}

package db

import (
	"path/filepath"
	"testing"
)

func TestOpenMemory(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()

	var count int
	if err := d.QueryRow("SELECT COUNT(*) FROM explanations").Scan(&count); err != nil {
		t.Fatalf("explanations table: %v", err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
}

func TestMigrateIdempotent(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()

	// Running migrate again should not fail.
	if err := d.migrate(); err != nil {
		t.Fatalf("second migrate() error: %v", err)
	}
}

func TestSurahRangeEnforced(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()

	_, err = d.Exec(`INSERT INTO explanations (id, surah, ayah, model, content) VALUES ('a', 115, 1, 'm', 'x')`)
	if err == nil {
		t.Error("expected CHECK violation for surah 115")
	}
	_, err = d.Exec(`INSERT INTO explanations (id, surah, ayah, model, content) VALUES ('b', 2, 1, 'm', 'x')`)
	if err != nil {
		t.Fatalf("valid insert: %v", err)
	}
	_, err = d.Exec(`INSERT INTO explanations (id, surah, ayah, model, content) VALUES ('c', 2, 1, 'm', 'y')`)
	if err == nil {
		t.Error("expected UNIQUE violation for duplicate (surah, ayah, model)")
	}
}

func TestOpenCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", FileName)
	d, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer d.Close()

	if d.Path() != path {
		t.Errorf("Path() = %q, want %q", d.Path(), path)
	}
	if _, err := d.Exec(`INSERT INTO explanations (id, surah, ayah, model, content) VALUES ('a', 1, 1, 'm', 'x')`); err != nil {
		t.Fatalf("insert: %v", err)
	}
}

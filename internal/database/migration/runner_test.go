package migration

import (
	"testing"
	"testing/fstest"
)

func TestLoad_OrdersAndChecksums(t *testing.T) {
	fsys := fstest.MapFS{
		"0002_add_indexes.sql": {Data: []byte("CREATE INDEX idx ON t (c);")},
		"0001_init.sql":        {Data: []byte("CREATE TABLE t (c INT);")},
		"notes.txt":            {Data: []byte("ignored")},
		"init.sql":             {Data: []byte("ignored, no version prefix")},
	}

	migs, err := load(fsys)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(migs) != 2 {
		t.Fatalf("expected 2 migrations, got %d", len(migs))
	}
	if migs[0].version != 1 || migs[1].version != 2 {
		t.Fatalf("unexpected order: %v", migs)
	}
	if migs[0].name != "init" || migs[1].name != "add_indexes" {
		t.Fatalf("unexpected names: %q %q", migs[0].name, migs[1].name)
	}
	if migs[0].checksum == "" || migs[0].checksum == migs[1].checksum {
		t.Fatalf("checksums not distinct: %q %q", migs[0].checksum, migs[1].checksum)
	}
}

func TestLoad_DuplicateVersion(t *testing.T) {
	fsys := fstest.MapFS{
		"0001_init.sql":  {Data: []byte("SELECT 1;")},
		"0001_other.sql": {Data: []byte("SELECT 2;")},
	}
	if _, err := load(fsys); err == nil {
		t.Fatal("expected duplicate version error")
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	fsys := fstest.MapFS{
		"0001_init.sql": {Data: []byte("   \n")},
	}
	if _, err := load(fsys); err == nil {
		t.Fatal("expected empty file error")
	}
}

func TestLoad_NoMigrationFiles(t *testing.T) {
	migs, err := load(fstest.MapFS{})
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(migs) != 0 {
		t.Fatalf("expected none, got %d", len(migs))
	}
}

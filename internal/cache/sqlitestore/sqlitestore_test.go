package sqlitestore

import (
	"context"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("open err: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	st := openTemp(t)

	if _, ok, err := st.Get(ctx, "k"); ok || err != nil {
		t.Fatalf("empty store: ok=%v err=%v", ok, err)
	}

	if err := st.Set(ctx, "k", []byte("v1")); err != nil {
		t.Fatalf("set err: %v", err)
	}
	if err := st.Set(ctx, "k", []byte("v2")); err != nil {
		t.Fatalf("upsert err: %v", err)
	}

	v, ok, err := st.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if string(v) != "v2" {
		t.Fatalf("val = %q, want v2 (last write wins)", v)
	}

	if err := st.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete err: %v", err)
	}
	if _, ok, _ := st.Get(ctx, "k"); ok {
		t.Fatalf("entry survived delete")
	}
}

func TestStore_Pragmas(t *testing.T) {
	st := openTemp(t)

	var journalMode string
	if err := st.db.QueryRow("PRAGMA journal_mode").Scan(&journalMode); err != nil {
		t.Fatal(err)
	}
	if journalMode != "wal" {
		t.Fatalf("journal_mode = %q, want wal", journalMode)
	}

	var busyTimeout int
	if err := st.db.QueryRow("PRAGMA busy_timeout").Scan(&busyTimeout); err != nil {
		t.Fatal(err)
	}
	if busyTimeout != 10_000 {
		t.Fatalf("busy_timeout = %d, want 10000", busyTimeout)
	}
}

func TestOpen_EmptyPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Fatalf("expected error on empty path")
	}
}

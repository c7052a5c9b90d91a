package fra

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestFileStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	s := NewFileStorage(path)

	content, err := s.Load()
	if err != nil {
		t.Fatalf("Load() of a missing file failed: %v", err)
	}
	if content != nil {
		t.Errorf("Load() of a missing file = %q, want nil", content)
	}

	for _, want := range []string{`[{"id":"a"}]`, `[]`} {
		if err := s.Save([]byte(want)); err != nil {
			t.Fatalf("Save() failed: %v", err)
		}
		got, err := s.Load()
		if err != nil {
			t.Fatalf("Load() failed: %v", err)
		}
		if string(got) != want {
			t.Errorf("Load() = %q, want %q", got, want)
		}
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("temporary files left behind: %v", entries)
	}
}

func TestFileStorageMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions")
	}
	path := filepath.Join(t.TempDir(), "records.json")
	if err := NewFileStorage(path).Save([]byte("[]")); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := info.Mode().Perm(); got != 0644 {
		t.Errorf("file mode = %v, want -rw-r--r--", got)
	}
}

func TestFileStorageStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	if err := os.WriteFile(path, []byte("{corrupted"), 0644); err != nil {
		t.Fatal(err)
	}
	store := NewStore(NewFileStorage(path), nil)
	if got := store.List(); len(got) != 0 {
		t.Fatalf("List() of a corrupted file = %v, want empty", got)
	}
	id, err := store.Upsert(NewRecord("", "ACME", Figures{A(1), A(1), A(1), A(1)}))
	if err != nil {
		t.Fatalf("Upsert() failed: %v", err)
	}

	reopened := NewStore(NewFileStorage(path), nil)
	r, ok := reopened.Get(id)
	if !ok || r.Name != "ACME" {
		t.Errorf("Get(%q) = %v, %v after reopening", id, r, ok)
	}
}

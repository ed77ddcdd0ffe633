package storage

import (
	"errors"
	"testing"
)

func TestMemStore_ImplementsStore(t *testing.T) {
	var _ Store = NewMemStore()
	var _ Store = (*FileStore)(nil)
}

func TestMemStore_RoundTrip(t *testing.T) {
	store := NewMemStore()

	if err := store.Save("n", "hello"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := store.Load("n")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != "hello" {
		t.Errorf("Load = %q, want %q", got, "hello")
	}

	if err := store.Delete("n"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Load("n"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load after delete = %v, want ErrNotFound", err)
	}
}

func TestMemStore_Default(t *testing.T) {
	store := NewMemStore()

	if _, err := store.LoadDefault(); !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadDefault = %v, want ErrNotFound", err)
	}

	if err := store.SaveDefault("  custom  "); err != nil {
		t.Fatalf("SaveDefault: %v", err)
	}
	got, err := store.LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	if got != "custom" {
		t.Errorf("LoadDefault = %q, want trimmed %q", got, "custom")
	}
}

func TestMemStore_ListInfoExists(t *testing.T) {
	store := NewMemStore()

	for _, name := range []string{"b", "a", "c"} {
		if err := store.Save(name, "content"); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	names, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"a", "b", "c"}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("List[%d] = %q, want %q", i, names[i], want[i])
		}
	}

	if !store.Exists("a") {
		t.Error("Exists(a) = false")
	}
	if store.Exists("z") {
		t.Error("Exists(z) = true")
	}

	info, err := store.Info("a")
	if err != nil {
		t.Fatalf("Info: %v", err)
	}
	if info.Size != int64(len("content")) {
		t.Errorf("info.Size = %d", info.Size)
	}
	if info.Path != "" {
		t.Errorf("info.Path = %q, want empty for memory store", info.Path)
	}

	if _, err := store.Info("z"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Info(z) = %v, want ErrNotFound", err)
	}
}

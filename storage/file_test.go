package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	store, err := NewFileStoreAt(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStoreAt: %v", err)
	}
	return store
}

func TestFileStore_RoundTrip(t *testing.T) {
	store := newTestStore(t)

	if err := store.Save("coding", "You are an expert Go programmer."); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.Load("coding")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != "You are an expert Go programmer." {
		t.Errorf("Load = %q", got)
	}

	if !store.Exists("coding") {
		t.Error("Exists = false, want true")
	}
	if store.Exists("nonexistent") {
		t.Error("Exists(nonexistent) = true, want false")
	}
}

func TestFileStore_LoadMissing(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Load("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Load error = %v, want ErrNotFound", err)
	}
}

func TestFileStore_TrimsContent(t *testing.T) {
	store := newTestStore(t)

	if err := store.Save("padded", "\n  content here  \n\n"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := store.Load("padded")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != "content here" {
		t.Errorf("Load = %q, want trimmed content", got)
	}
}

func TestFileStore_Default(t *testing.T) {
	store := newTestStore(t)

	// No default saved yet
	_, err := store.LoadDefault()
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadDefault error = %v, want ErrNotFound", err)
	}

	if err := store.SaveDefault("Custom default prompt"); err != nil {
		t.Fatalf("SaveDefault: %v", err)
	}
	got, err := store.LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	if got != "Custom default prompt" {
		t.Errorf("LoadDefault = %q", got)
	}

	// Default lives in the base dir, not the prompts subdirectory
	if _, err := os.Stat(filepath.Join(store.BaseDir(), "default.txt")); err != nil {
		t.Errorf("default.txt not in base dir: %v", err)
	}
}

func TestFileStore_ListAndInfo(t *testing.T) {
	store := newTestStore(t)

	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := store.Save(name, "content for "+name); err != nil {
			t.Fatalf("Save(%s): %v", name, err)
		}
	}

	names, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"alpha", "mid", "zeta"}
	if len(names) != len(want) {
		t.Fatalf("List = %v, want %v", names, want)
	}
	for i := range names {
		if names[i] != want[i] {
			t.Errorf("List[%d] = %q, want %q", i, names[i], want[i])
		}
	}

	info, err := store.Info("alpha")
	if err != nil {
		t.Fatalf("Info: %v", err)
	}
	if info.Name != "alpha" {
		t.Errorf("info.Name = %q", info.Name)
	}
	if info.Size != int64(len("content for alpha")) {
		t.Errorf("info.Size = %d, want %d", info.Size, len("content for alpha"))
	}
	if info.Path == "" {
		t.Error("info.Path should be set")
	}
	if info.CreatedAt.IsZero() || info.ModifiedAt.IsZero() {
		t.Error("timestamps should be set")
	}

	_, err = store.Info("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Info error = %v, want ErrNotFound", err)
	}
}

func TestFileStore_Delete(t *testing.T) {
	store := newTestStore(t)

	if err := store.Save("temp", "short lived"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Delete("temp"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if store.Exists("temp") {
		t.Error("prompt still exists after delete")
	}
	if _, err := store.Load("temp"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load after delete = %v, want ErrNotFound", err)
	}
	names, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("List after delete = %v, want empty", names)
	}

	if err := store.Delete("temp"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete again = %v, want ErrNotFound", err)
	}
}

func TestFileStore_PreservesCreatedAt(t *testing.T) {
	store := newTestStore(t)

	if err := store.Save("n", "first"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	first, err := store.Info("n")
	if err != nil {
		t.Fatalf("Info: %v", err)
	}

	if err := store.Save("n", "second"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	second, err := store.Info("n")
	if err != nil {
		t.Fatalf("Info: %v", err)
	}

	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Errorf("CreatedAt changed on resave: %v vs %v", second.CreatedAt, first.CreatedAt)
	}
	if second.Size != int64(len("second")) {
		t.Errorf("Size = %d, want %d", second.Size, len("second"))
	}
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"valid-name_123", "valid-name_123"},
		{"invalid/name:with*chars", "invalid_name_with_chars"},
		{"dots.and spaces", "dots_and_spaces"},
		{"../escape", "___escape"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := sanitizeName(tt.input)
			if got != tt.want {
				t.Errorf("sanitizeName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFileStore_MetadataSidecar(t *testing.T) {
	store := newTestStore(t)

	if err := store.Save("tracked", "content"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(store.BaseDir(), "metadata.json"))
	if err != nil {
		t.Fatalf("metadata.json missing: %v", err)
	}
	for _, want := range []string{`"version"`, `"tracked"`, `"file_name"`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("metadata.json should contain %s", want)
		}
	}
}

// Package storage persists prompts as files in a platform config directory.
//
// Core types:
//   - Store: Interface over prompt persistence (load/save/delete/list/info)
//   - FileStore: File-backed implementation with a JSON metadata sidecar
//   - MemStore: In-memory implementation for tests
//
// FileStore keeps the default prompt at default.txt in its base directory
// and named prompts under a prompts/ subdirectory, one file per name. The
// base directory defaults to the platform config location (XDG config dir
// on Linux, Application Support on macOS, AppData on Windows).
//
// Example usage:
//
//	store, err := storage.NewFileStoreAt("/path/to/dir")
//	if err != nil {
//	    return err
//	}
//	if err := store.Save("coding", "You are an expert Go programmer."); err != nil {
//	    return err
//	}
//	names, _ := store.List()
package storage

// Package mapping holds the durable VideoId -> {AssetKind -> reference} document.
//
// A Mapping is loaded once at the start of a run, mutated in memory and saved once at
// the end. There is no per-entry durability: a crash mid-run loses everything since the
// last save.
//
// # Backends
//
//   - FileStore: an indented JSON document written atomically with renameio.
//   - DBStore: two GORM tables (videos, video_assets) replaced in one transaction.
//
// # Locking
//
// AcquireLock takes an advisory file lock next to the mapping file so that two runs
// cannot interleave their load/save cycles on the same document.
//
// # Usage
//
//	store := mapping.NewFileStore("public/assets_mapping.json")
//	m, err := store.Load(ctx)
//	m.EnsureVideo("v1")
//	m.Set("v1", mapping.KindInfographic, "assets/v1_infographic.png")
//	err = store.Save(ctx, m)
package mapping

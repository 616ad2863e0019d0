// Package sync reconciles locally generated assets with the channel's videos.
//
// A Runner looks every asset up in the catalog, lets the match engine pick a video,
// uploads the file, records the reference in the mapping and removes the local copy.
// Per-asset failures are reported and the batch continues.
//
// A Job wraps one run with the mapping lifecycle: the mapping is loaded once under
// an advisory lock, optionally seeded by discovery, mutated in memory and saved once
// at the end. Load, discovery, scan, save and publish failures abort the job.
package sync

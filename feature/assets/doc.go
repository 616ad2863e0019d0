// Package assets enumerates the locally generated image files to reconcile.
//
// Each configured folder maps to one asset kind (infographics -> infographic,
// mindmaps -> mindmap). A file's title is its name without the extension. Scan order
// is deterministic: folders in configuration order, then files by name. Reconciled
// files are consumed (removed); unmatched files stay in place for the next run.
package assets

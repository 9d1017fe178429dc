// Package export writes collected posts and run manifests to CSV files.
//
// Layout mirrors the research data directories:
//   - raw: every in-window post per source and window
//   - clean: the keyword-matched subset, suffixed _politics
//
// Files are written whole per run. There is no append or incremental mode;
// re-running a source and window replaces its files.
package export

// Package manifest persists a catalog of extraction runs and the shard
// files they produced, backed by SQLite under OUTPUT_DIR/.docshard. The
// catalog lets operators inspect what a run wrote (docshard shards) without
// walking the output tree, and records the document id range held by each
// shard file.
package manifest

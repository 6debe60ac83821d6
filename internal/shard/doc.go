// Package shard writes accepted documents into the bounded wikiextractor
// directory layout: 676 two-letter directories ("AA".."ZZ"), up to 100
// files per directory, up to a fixed number of documents per file.
//
// File placement is a pure function of a monotonically increasing file
// counter, so rotation never revisits an earlier coordinate. The Writer
// performs rotation as a single state transition and reaches the filesystem
// only through the Opener interface, which keeps the rotation logic
// testable without real I/O.
package shard

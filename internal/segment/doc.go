// Package segment drives the extraction pipeline: it streams raw input
// lines, cleans each one, reassembles documents at blank-line boundaries,
// scores every candidate through the quality filter, and hands accepted
// documents to the shard writer in order. It owns the only mutable pipeline
// state (the line accumulator and the run statistics) and is strictly
// single-threaded.
package segment

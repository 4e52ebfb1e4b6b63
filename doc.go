// Package gophercoreset builds weighted coresets for k-means clustering.
//
// A coreset is a small, weighted subset of a point set whose clustering
// cost approximates the cost on the full set for every candidate centre
// placement. GopherCoreset builds one in three stages: a bicriteria
// k-means clustering partitions the input, the partition is decomposed
// into cost-banded rings and groups, and each group (plus an overshoot
// remainder, via sensitivity sampling) contributes weighted samples to
// the output coreset.
//
// # Quick Start
//
//	import (
//	    "github.com/TIVerse/gophercoreset/coreset"
//	)
//
//	centres, samples, err := coreset.Build(points,
//	    coreset.WithK(5),
//	    coreset.WithT(200),
//	    coreset.WithSeed(42),
//	)
//
// # Package Organization
//
// - core: sentinel errors, functional options, package defaults
// - random: the pipeline's sole PRNG owner (uniform draws, weighted
//   choice, Chao's A-Res weighted reservoir sampling)
// - assignment: the nearest-centre assignment table and its aggregates
// - cluster: the bicriteria k-means engine (k-means++/uniform init,
//   Lloyd iteration) and ring construction
// - sensitivity: the sensitivity (Feldman-Langberg) sampler
// - groupsample: ring/group partitioning and group-proportional sampling
// - coreset: the Build entry point and its Config/Option surface
// - io: Parser capability with bag-of-words and census CSV
//   implementations, for demonstrative external input
// - cmd/gophercoreset: a Cobra CLI driver over the library
package gophercoreset

// Package bitset provides a space-efficient bit array implementation.
//
// BitSet uses 1 bit per value (packed into uint64 words) rather than 1 byte,
// providing an 8x memory savings compared to []bool.
//
// Primary use case: proving ring/group partition invariants in O(N),
// marking which points have already been claimed by a ring or group so
// gaps and double-assignments surface as a single bitset scan.
// Target performance: <10ns per Set/Test operation.
package bitset

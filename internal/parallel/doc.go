// Package parallel runs row-band work on a fixed set of goroutines.
//
// The brush canvas splits a blend rectangle into horizontal bands and hands
// each band to a WorkerPool. Bands never overlap, so workers write disjoint
// rows of the destination without further synchronization.
package parallel

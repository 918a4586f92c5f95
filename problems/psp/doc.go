// Package psp implements the pigment sequencing problem: schedule nb_items
// recurring production runs across nb_periods time slots, minimizing the sum
// of sequence-dependent changeover costs and early-production stocking
// costs, subject to each item's per-period demand deadlines.
//
// The state walks time backwards from nb_periods to 0 (LeftToRight variable
// ordering branches on the period about to be scheduled), carrying, for
// every item, the most recent not-yet-satisfied demand deadline at or after
// the current time. Estimate combines a greedy relaxed stocking-cost
// schedule with a precomputed approximate-spanning-tree bound on the
// remaining changeover cost.
package psp

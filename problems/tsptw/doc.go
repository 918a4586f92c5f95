// Package tsptw implements the Traveling Salesman Problem with Time
// Windows: visit every city exactly once, starting and ending at the
// depot, without arriving at any city after its time window closes.
// Arriving early is free — the traveler waits until the window opens.
//
// State is the current city, the elapsed time, and the set of cities
// (including the depot, until the final step) not yet visited. The
// engine branches left-to-right over tour positions; Estimate combines
// a nearest-unvisited-city bound, an approximate spanning-tree bound over
// the unvisited set, and a cheapest-feasible-return-to-depot bound.
package tsptw

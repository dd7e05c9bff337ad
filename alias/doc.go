// Package alias implements Vose's alias method: given a discrete
// distribution over n items, build two parallel tables in O(n) time so that
// each subsequent draw costs exactly two uniform random numbers and O(1)
// work, independent of n.
//
// Construction (New) partitions weights into a "light" queue (weight below
// the average 1/n) and a "heavy" queue (weight at or above average), then
// repeatedly pairs one light entry with one heavy entry: the light entry
// gets its own probability column, the heavy entry is recorded as its
// alias, and the heavy entry's remaining weight is requeued. This is the
// numerically stable formulation described by Vose (1991) and popularized
// by Keith Schwarz's "Darts, Dice, and Coins".
//
// Draw performs exactly one column pick (uniform over [0,n)) and one biased
// coin flip (uniform over [0,1) against that column's probability) — no
// retry loops, no branching on n.
package alias

// Package model defines the core data types shared across LinkRank:
// the directed link graph built from a corpus, the probability
// distributions produced by the rank estimators, and the report
// structure consumed by the report writers.
package model

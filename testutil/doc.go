// Package testutil provides deterministic test fixtures: a seeded RNG and
// generators for embedding-like vectors, pure sinusoids and constant
// signals. Tests that assert numeric bounds must use fixed seeds so
// failures are reproducible.
package testutil

// Package distance provides float32 vector similarity primitives used by
// the codec for full-precision comparisons: dot product, squared L2,
// cosine similarity and L2 normalization.
package distance

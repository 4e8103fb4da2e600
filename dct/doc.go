// Package dct implements DCT-based lossy compression of embedding
// vectors. The forward DCT-II concentrates a smooth signal's energy in
// its leading coefficients; compression truncates to a fixed or
// energy-adaptive prefix, and an optional uniform scalar quantizer packs
// the retained coefficients into 8 or 16 bits each.
//
// Because the transform is orthonormal, squared-coefficient sums equal
// squared-signal sums (Parseval), which makes the reported energyRetained
// an exact accounting of reconstruction quality and lets similarity be
// approximated directly on coefficient prefixes.
package dct

// Package statevec is a dense complex128 state-vector simulator covering the
// full gate set, abstract and native alike. Its purpose is verification: two
// gate sequences are physically interchangeable exactly when they carry every
// basis state to the same final vector up to a global phase, and Fidelity
// measures precisely that.
//
// Qubit q maps to bit q of the amplitude index (little-endian). The
// simulator is O(2^n) per gate and intended for small verification registers,
// not for production simulation.
package statevec

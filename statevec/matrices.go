// Package statevec - the gate matrices.
package statevec

import (
	"math"
	"math/cmplx"
)

func pauliX() [2][2]complex128 {
	return [2][2]complex128{{0, 1}, {1, 0}}
}

func pauliY() [2][2]complex128 {
	return [2][2]complex128{{0, -1i}, {1i, 0}}
}

func pauliZ() [2][2]complex128 {
	return [2][2]complex128{{1, 0}, {0, -1}}
}

func hadamard() [2][2]complex128 {
	h := complex(1/math.Sqrt2, 0)

	return [2][2]complex128{{h, h}, {h, -h}}
}

// phaseGate is diag(1, e^{iθ}).
func phaseGate(theta float64) [2][2]complex128 {
	return [2][2]complex128{{1, 0}, {0, cmplx.Exp(complex(0, theta))}}
}

func rotX(theta float64) [2][2]complex128 {
	c := complex(math.Cos(theta/2), 0)
	s := complex(0, -math.Sin(theta/2))

	return [2][2]complex128{{c, s}, {s, c}}
}

func rotY(theta float64) [2][2]complex128 {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)

	return [2][2]complex128{{c, -s}, {s, c}}
}

func rotZ(theta float64) [2][2]complex128 {
	return [2][2]complex128{
		{cmplx.Exp(complex(0, -theta/2)), 0},
		{0, cmplx.Exp(complex(0, theta/2))},
	}
}

func u3(theta, phi, lambda float64) [2][2]complex128 {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)

	return [2][2]complex128{
		{c, -cmplx.Exp(complex(0, lambda)) * s},
		{cmplx.Exp(complex(0, phi)) * s, cmplx.Exp(complex(0, phi+lambda)) * c},
	}
}

// drag is a rotation of theta about the equatorial axis at angle phase:
// exp(-iθ/2 (cos φ X + sin φ Y)).
func drag(theta, phase float64) [2][2]complex128 {
	c := complex(math.Cos(theta/2), 0)
	s := math.Sin(theta / 2)

	return [2][2]complex128{
		{c, complex(0, -s) * cmplx.Exp(complex(0, -phase))},
		{complex(0, -s) * cmplx.Exp(complex(0, phase)), c},
	}
}

func swapMat() [4][4]complex128 {
	return [4][4]complex128{
		{1, 0, 0, 0},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
	}
}

func iswapMat() [4][4]complex128 {
	return [4][4]complex128{
		{1, 0, 0, 0},
		{0, 0, 1i, 0},
		{0, 1i, 0, 0},
		{0, 0, 0, 1},
	}
}

func fswapMat() [4][4]complex128 {
	return [4][4]complex128{
		{1, 0, 0, 0},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
		{0, 0, 0, -1},
	}
}

func rotXX(theta float64) [4][4]complex128 {
	c := complex(math.Cos(theta/2), 0)
	s := complex(0, -math.Sin(theta/2))

	return [4][4]complex128{
		{c, 0, 0, s},
		{0, c, s, 0},
		{0, s, c, 0},
		{s, 0, 0, c},
	}
}

func rotYY(theta float64) [4][4]complex128 {
	c := complex(math.Cos(theta/2), 0)
	s := complex(0, math.Sin(theta/2))

	return [4][4]complex128{
		{c, 0, 0, s},
		{0, c, -s, 0},
		{0, -s, c, 0},
		{s, 0, 0, c},
	}
}

func rotZZ(theta float64) [4][4]complex128 {
	minus := cmplx.Exp(complex(0, -theta/2))
	plus := cmplx.Exp(complex(0, theta/2))

	return [4][4]complex128{
		{minus, 0, 0, 0},
		{0, plus, 0, 0},
		{0, 0, plus, 0},
		{0, 0, 0, minus},
	}
}

// Package native - the worklist translator.
package native

import "github.com/qilimanjaro-tech/pulsekit/gate"

// Translate returns a gate list containing only native-set kinds, preserving
// program order and qubit semantics. Non-native gates are replaced by their
// registered decompositions; decompositions may themselves contain non-native
// kinds (e.g. CNOT → H, CZ, H), so substitution repeats until a fixpoint.
//
// The fixpoint is driven by an explicit worklist rather than recursion on the
// whole list: each popped gate is either emitted (native) or replaced by its
// expansion at the same position. Every table entry expands into strictly
// simpler kinds, so the worklist drains in a bounded number of steps.
//
// Errors: ErrUnsupportedGate when a gate kind has no table entry.
//
// Complexity: O(total emitted gates) time, O(depth of nesting) extra stack
// slots beyond the output.
func Translate(gates []gate.Gate) ([]gate.Gate, error) {
	out := make([]gate.Gate, 0, len(gates))

	// stack holds pending gates; top of stack is the next gate in program
	// order, so the input is pushed in reverse.
	stack := make([]gate.Gate, 0, len(gates))

	var i int
	for i = len(gates) - 1; i >= 0; i-- {
		stack = append(stack, gates[i])
	}

	var (
		g   gate.Gate
		sub []gate.Gate
		err error
	)
	for len(stack) > 0 {
		g = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if g.Kind().IsNative() {
			out = append(out, g)
			continue
		}

		sub, err = decompositionFor(g)
		if err != nil {
			return nil, err
		}
		// Splice the expansion in place of g: push in reverse so that
		// sub[0] is popped (and thus applied) first.
		for i = len(sub) - 1; i >= 0; i-- {
			stack = append(stack, sub[i])
		}
	}

	return out, nil
}

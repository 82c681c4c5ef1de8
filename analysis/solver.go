package analysis

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/complexo-dev/complexo/result"
)

// Solver implements spec §4.3's "Solver (rsolve + Master Theorem +
// fallbacks)": given a canonical recurrence-equation string, it extracts the
// recognized pattern family and produces a closed-form complexity string,
// or "?" (rendered by callers as O(?)) when no pattern matches.
//
// Ported from original_source/src/analyzer/recurrence_solver.py +
// math_analyzer.py's case dispatch, implemented without a CAS per spec.md
// §9's "embed a minimal symbolic core" instruction: the recognized shapes
// are matched structurally rather than solved by a general algebra system.
type Solver struct{}

// NewSolver creates a Solver. It holds no state; every recognized shape is a
// pure function of the equation text.
func NewSolver() *Solver { return &Solver{} }

var (
	reDivideConquer    = regexp.MustCompile(`T\(n\)\s*=\s*(\d*)T\(n/(\d+)\)\s*\+\s*O\(([^)]*)\)`)
	reAdditiveTwoTerm  = regexp.MustCompile(`T\(n\)\s*=\s*T\(n-1\)\s*\+\s*T\(n-2\)\s*\+\s*O\(([^)]*)\)`)
	reMultiplicative   = regexp.MustCompile(`T\(n\)\s*=\s*(\d+)T\(n-1\)\s*\+\s*O\(([^)]*)\)`)
	reLinearDecrement  = regexp.MustCompile(`T\(n\)\s*=\s*T\(n-(\d+)\)\s*\+\s*O\(([^)]*)\)`)
)

// SolveEquation returns the resolution method and a bare complexity term
// (no Θ/O/Ω glyph — callers attach the notation) for eq.
func (s *Solver) SolveEquation(eq string) (result.Method, string) {
	if m := reAdditiveTwoTerm.FindStringSubmatch(eq); m != nil {
		return result.MethodTree, "2^n"
	}
	if m := reDivideConquer.FindStringSubmatch(eq); m != nil {
		a := 1
		if m[1] != "" {
			a, _ = strconv.Atoi(m[1])
		}
		b, _ := strconv.Atoi(m[2])
		c, _ := polyDegree(m[3])
		return result.MethodMaster, masterTheorem(a, b, c)
	}
	if m := reMultiplicative.FindStringSubmatch(eq); m != nil {
		a, _ := strconv.Atoi(m[1])
		if a >= 2 {
			return result.MethodSubstitution, fmt.Sprintf("%d^n", a)
		}
		return result.MethodSubstitution, "n"
	}
	if m := reLinearDecrement.FindStringSubmatch(eq); m != nil {
		c, _ := polyDegree(m[2])
		return result.MethodSubstitution, linearSubstitution(c)
	}
	return result.MethodDerived, "?"
}

// polyDegree extracts the polynomial degree of a work term like "1", "n",
// "n^2" or "n log n" (treated as degree 1 for the Master Theorem exponent
// comparison; its log factor is not carried into the result).
func polyDegree(fn string) (int, error) {
	switch fn {
	case "", "1":
		return 0, nil
	case "n":
		return 1, nil
	case "n log n":
		return 1, nil
	}
	var deg int
	if _, err := fmt.Sscanf(fn, "n^%d", &deg); err == nil {
		return deg, nil
	}
	return 1, nil
}

// masterTheorem applies the three-case Master Theorem to T(n) = a*T(n/b) + f(n)
// where f(n) has polynomial degree c, per spec §4.3 item 1.
func masterTheorem(a, b, c int) string {
	if a < 1 || b < 2 {
		return "?"
	}
	logba := math.Log(float64(a)) / math.Log(float64(b))
	const epsilon = 0.01

	switch {
	case float64(c) < logba-epsilon:
		return formatPolyPower(logba)
	case math.Abs(float64(c)-logba) < epsilon:
		switch c {
		case 0:
			return "log n"
		case 1:
			return "n log n"
		default:
			return fmt.Sprintf("n^%d log n", c)
		}
	default:
		if c == 0 {
			return "1"
		}
		if c == 1 {
			return "n"
		}
		return fmt.Sprintf("n^%d", c)
	}
}

// linearSubstitution solves T(n) = T(n-k) + f(n) by substitution: the
// closed form is Θ(n · f̄) where f̄ is f(n)'s own dominant term, per spec
// §4.3 item 2 (k itself does not change the asymptotic class).
func linearSubstitution(fDegree int) string {
	switch fDegree {
	case 0:
		return "n"
	case 1:
		return "n^2"
	default:
		return fmt.Sprintf("n^%d", fDegree+1)
	}
}

// formatPolyPower renders a (possibly fractional) polynomial exponent as a
// canonical complexity string, rounding to the nearest integer when the
// fractional part is negligible (the common case for Master Theorem
// recurrences drawn from this corpus, where a is a power of b).
func formatPolyPower(deg float64) string {
	rounded := math.Round(deg)
	if math.Abs(deg-rounded) < 0.05 {
		switch int(rounded) {
		case 0:
			return "1"
		case 1:
			return "n"
		default:
			return fmt.Sprintf("n^%d", int(rounded))
		}
	}
	return fmt.Sprintf("n^%.2f", deg)
}

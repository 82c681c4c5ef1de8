package expr

import (
	"fmt"
	"sort"
	"strings"
)

// Kind discriminates the symbolic shapes CostExpr can take, closed under the
// operations spec.md §3/§9 requires: "+ * /", log, "^", sums (Σ) and the
// recurrence symbol T(·).
type Kind int

const (
	KindConst Kind = iota
	KindSymbol
	KindSum
	KindProduct
	KindLog
	KindPow
	KindSigma
	KindRecurrence
)

// CostExpr is a node in the minimal symbolic core: a polynomial/log/
// exponential expression over the indeterminate n, closed under addition,
// multiplication, logarithm, exponentiation, summation and the T(·)
// recurrence symbol. It intentionally does not attempt general CAS-grade
// simplification (spec.md §9: "embed a minimal symbolic core").
type CostExpr struct {
	Kind  Kind
	Value int64       // KindConst
	Name  string       // KindSymbol name, or KindRecurrence argument text
	Args  []*CostExpr  // operands: Sum/Product members; Log/Pow base+exponent
	Bound string       // KindSigma: the loop bound text, for rendering only
}

// Const builds a constant node.
func Const(v int64) *CostExpr { return &CostExpr{Kind: KindConst, Value: v} }

// Symbol builds a free variable node, e.g. the indeterminate "n".
func Symbol(name string) *CostExpr { return &CostExpr{Kind: KindSymbol, Name: name} }

// Recurrence builds a T(arg) term.
func Recurrence(arg string) *CostExpr { return &CostExpr{Kind: KindRecurrence, Name: arg} }

// Sum builds a (flattened, simplified) sum of operands.
func Sum(parts ...*CostExpr) *CostExpr { return simplify(&CostExpr{Kind: KindSum, Args: parts}) }

// Product builds a (flattened, simplified) product of operands.
func Product(parts ...*CostExpr) *CostExpr {
	return simplify(&CostExpr{Kind: KindProduct, Args: parts})
}

// Log builds log(x).
func Log(x *CostExpr) *CostExpr { return &CostExpr{Kind: KindLog, Args: []*CostExpr{x}} }

// Pow builds base^exp.
func Pow(base, exp *CostExpr) *CostExpr { return &CostExpr{Kind: KindPow, Args: []*CostExpr{base, exp}} }

// Sigma builds Σ_{bound} body, a symbolic (unfolded) loop sum.
func Sigma(bound string, body *CostExpr) *CostExpr {
	return &CostExpr{Kind: KindSigma, Bound: bound, Args: []*CostExpr{body}}
}

// Add returns a simplified a+b.
func Add(a, b *CostExpr) *CostExpr { return Sum(a, b) }

// Mul returns a simplified a*b.
func Mul(a, b *CostExpr) *CostExpr { return Product(a, b) }

// simplify flattens nested sums/products of the same kind and folds adjacent
// constants — the "normalize additive expansion" operation spec.md §9
// requires at minimum.
func simplify(e *CostExpr) *CostExpr {
	switch e.Kind {
	case KindSum:
		var flat []*CostExpr
		var constSum int64
		hasConst := false
		for _, a := range e.Args {
			if a == nil {
				continue
			}
			if a.Kind == KindSum {
				for _, m := range simplify(a).Args {
					if m.Kind == KindConst {
						constSum += m.Value
						hasConst = true
						continue
					}
					flat = append(flat, m)
				}
				continue
			}
			if a.Kind == KindConst {
				constSum += a.Value
				hasConst = true
				continue
			}
			flat = append(flat, a)
		}
		if hasConst {
			flat = append(flat, Const(constSum))
		}
		if len(flat) == 1 {
			return flat[0]
		}
		if len(flat) == 0 {
			return Const(0)
		}
		return &CostExpr{Kind: KindSum, Args: flat}
	case KindProduct:
		var flat []*CostExpr
		constProd := int64(1)
		hasConst := false
		for _, a := range e.Args {
			if a == nil {
				continue
			}
			if a.Kind == KindProduct {
				for _, m := range simplify(a).Args {
					if m.Kind == KindConst {
						constProd *= m.Value
						hasConst = true
						continue
					}
					flat = append(flat, m)
				}
				continue
			}
			if a.Kind == KindConst {
				constProd *= a.Value
				hasConst = true
				continue
			}
			flat = append(flat, a)
		}
		if hasConst && (constProd != 1 || len(flat) == 0) {
			flat = append(flat, Const(constProd))
		}
		if len(flat) == 1 {
			return flat[0]
		}
		if len(flat) == 0 {
			return Const(1)
		}
		return &CostExpr{Kind: KindProduct, Args: flat}
	default:
		return e
	}
}

// String renders the expression in the equation notation spec.md uses
// ("T(n) = ...", "n^2", "log n", "2^n").
func (e *CostExpr) String() string {
	if e == nil {
		return ""
	}
	switch e.Kind {
	case KindConst:
		return fmt.Sprintf("%d", e.Value)
	case KindSymbol:
		return e.Name
	case KindRecurrence:
		return fmt.Sprintf("T(%s)", e.Name)
	case KindLog:
		return fmt.Sprintf("log(%s)", e.Args[0].String())
	case KindPow:
		base, exp := e.Args[0], e.Args[1]
		if exp.Kind == KindConst && exp.Value == 1 {
			return base.String()
		}
		return fmt.Sprintf("%s^%s", base.String(), exp.String())
	case KindSigma:
		return fmt.Sprintf("Σ_{%s}(%s)", e.Bound, e.Args[0].String())
	case KindSum:
		parts := make([]string, len(e.Args))
		for i, a := range e.Args {
			parts[i] = a.String()
		}
		return strings.Join(parts, " + ")
	case KindProduct:
		parts := make([]string, len(e.Args))
		for i, a := range e.Args {
			parts[i] = a.String()
		}
		return strings.Join(parts, "*")
	default:
		return "?"
	}
}

// HasRecurrence reports whether e contains a T(·) term anywhere, i.e.
// whether the math engine must hand it to the solver instead of reducing it
// directly to a Big-O string.
func (e *CostExpr) HasRecurrence() bool {
	if e == nil {
		return false
	}
	if e.Kind == KindRecurrence {
		return true
	}
	for _, a := range e.Args {
		if a.HasRecurrence() {
			return true
		}
	}
	return false
}

// Term is the dominant-term fingerprint used to compare two cost
// expressions: lexicographic comparison of (exponential base, polynomial
// degree, log degree), per spec.md §9's "detect dominant term by comparing
// (exp_base, poly_degree, log_degree) lexicographically".
type Term struct {
	ExpBase int // 0 means "no exponential factor" (i.e. base 1)
	PolyDeg int
	LogDeg  int
}

// Less reports whether t grows asymptotically slower than other.
func (t Term) Less(other Term) bool {
	if t.ExpBase != other.ExpBase {
		return t.ExpBase < other.ExpBase
	}
	if t.PolyDeg != other.PolyDeg {
		return t.PolyDeg < other.PolyDeg
	}
	return t.LogDeg < other.LogDeg
}

// String renders a Term back into canonical Big-O notation, e.g. "n^2",
// "n log n", "2^n", "log n", "1".
func (t Term) String() string {
	switch {
	case t.ExpBase >= 2:
		return fmt.Sprintf("%d^n", t.ExpBase)
	case t.PolyDeg == 0 && t.LogDeg == 0:
		return "1"
	case t.PolyDeg == 0 && t.LogDeg > 0:
		if t.LogDeg == 1 {
			return "log n"
		}
		return fmt.Sprintf("log^%d n", t.LogDeg)
	case t.PolyDeg == 1 && t.LogDeg == 1:
		return "n log n"
	case t.PolyDeg == 1 && t.LogDeg == 0:
		return "n"
	case t.LogDeg == 0:
		return fmt.Sprintf("n^%d", t.PolyDeg)
	default:
		return fmt.Sprintf("n^%d log^%d n", t.PolyDeg, t.LogDeg)
	}
}

// dominantTerm extracts the Term fingerprint of a single (already-
// simplified, recurrence-free) CostExpr node, treating every symbol as the
// indeterminate n.
func dominantTerm(e *CostExpr) Term {
	if e == nil {
		return Term{}
	}
	switch e.Kind {
	case KindConst:
		return Term{}
	case KindSymbol:
		return Term{PolyDeg: 1}
	case KindLog:
		inner := dominantTerm(e.Args[0])
		if inner.PolyDeg == 0 && inner.ExpBase == 0 {
			return Term{LogDeg: 1}
		}
		// log(n^k) ~ k*log n in rank, but the engine only tracks rank not
		// coefficient; log of a polynomial is still log-rank 1.
		return Term{LogDeg: 1}
	case KindPow:
		base, exp := e.Args[0], e.Args[1]
		if base.Kind == KindConst && base.Value >= 2 && exp.Kind == KindSymbol {
			return Term{ExpBase: int(base.Value)}
		}
		if base.Kind == KindSymbol && exp.Kind == KindConst {
			return Term{PolyDeg: int(exp.Value)}
		}
		// Fallback: treat as polynomial degree 1 growth.
		return Term{PolyDeg: 1}
	case KindSigma:
		// The sum runs its body over a symbolic range, i.e. ~n times.
		t := dominantTerm(e.Args[0])
		t.PolyDeg++
		return t
	case KindSum:
		best := Term{}
		for _, a := range e.Args {
			t := dominantTerm(a)
			if best.Less(t) {
				best = t
			}
		}
		return best
	case KindProduct:
		total := Term{}
		for _, a := range e.Args {
			t := dominantTerm(a)
			total.ExpBase = maxInt(total.ExpBase, t.ExpBase)
			total.PolyDeg += t.PolyDeg
			total.LogDeg += t.LogDeg
		}
		return total
	default:
		return Term{}
	}
}

// Dominant returns the dominant (asymptotically largest) term of e, dropping
// every additive term it strictly outgrows — the "drop dominated additive
// terms before reporting Big-O" rule of spec.md §4.3.
func Dominant(e *CostExpr) Term {
	return dominantTerm(simplify(e))
}

// BigO renders the dominant term of e as a canonical complexity string.
func BigO(e *CostExpr) string {
	return Dominant(e).String()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// SortedKeys returns m's keys in sorted order, for rendering base-case maps
// deterministically.
func SortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

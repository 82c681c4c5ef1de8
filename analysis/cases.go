package analysis

import (
	"strings"

	"github.com/complexo-dev/complexo/ast"
	"github.com/complexo-dev/complexo/result"
)

// AlgorithmType is a coarse shape bucket the case analyzer assigns a
// function to before picking its best/worst/average narrative.
type AlgorithmType string

const (
	AlgoFibonacci        AlgorithmType = "fibonacci"
	AlgoBinarySearch     AlgorithmType = "binary_search"
	AlgoPrimeTest        AlgorithmType = "prime_test"
	AlgoDivideConquer    AlgorithmType = "divide_conquer"
	AlgoRecursive        AlgorithmType = "recursive"
	AlgoLinearSearch     AlgorithmType = "linear_search"
	AlgoLinearProcessing AlgorithmType = "linear_processing"
	AlgoNestedLoops      AlgorithmType = "nested_loops"
	AlgoConstant         AlgorithmType = "constant"
)

// CaseAnalyzer produces the best/worst/average narrative triple of spec §4.5.
//
// Grounded on original_source/src/analyzer/case_analyzer.py's CaseAnalyzer:
// the detect-then-lookup-table shape is kept, with the Spanish narrative
// text translated and the lookup table expressed as Go struct literals
// instead of nested dicts.
type CaseAnalyzer struct{}

// NewCaseAnalyzer creates a CaseAnalyzer. It holds no state.
func NewCaseAnalyzer() *CaseAnalyzer { return &CaseAnalyzer{} }

// AnalyzeCases returns the [best, worst, average] triple for fn, given the
// recursion classifier's verdict and the already-solved dominant complexity.
func (c *CaseAnalyzer) AnalyzeCases(fn *ast.Function, info result.RecursionInfo, complexity string) []result.CaseAnalysis {
	algo := detectAlgorithmType(fn, info)
	return []result.CaseAnalysis{
		bestCase(fn.Name, algo, complexity),
		worstCase(fn.Name, algo, complexity),
		averageCase(fn.Name, algo, complexity),
	}
}

func detectAlgorithmType(fn *ast.Function, info result.RecursionInfo) AlgorithmType {
	if info.HasRecursion {
		switch info.Pattern {
		case result.PatternBinary:
			if strings.Contains(info.Relation, "T(n-1) + T(n-2)") {
				return AlgoFibonacci
			}
			return AlgoRecursive
		case result.PatternBinaryExclusive:
			return AlgoBinarySearch
		case result.PatternDivideAndConquer:
			return AlgoDivideConquer
		default:
			if hasModuloGuardWithReturn(fn.Body) {
				return AlgoPrimeTest
			}
			return AlgoRecursive
		}
	}

	depth := loopDepth(fn.Body)
	switch {
	case depth >= 2:
		return AlgoNestedLoops
	case depth == 1:
		if hasModuloGuardWithReturn(fn.Body) {
			return AlgoPrimeTest
		}
		if hasEarlyReturnInLoop(fn.Body) {
			return AlgoLinearSearch
		}
		return AlgoLinearProcessing
	default:
		return AlgoConstant
	}
}

// hasModuloGuardWithReturn reports whether fn contains a loop whose body
// tests a modulo condition and returns directly from inside it — the shape
// of a trial-division primality test.
func hasModuloGuardWithReturn(stmts []ast.Stmt) bool {
	found := false
	ast.Inspect(stmts, func(n ast.Node) bool {
		loopBody, ok := loopBodyOf(n)
		if !ok {
			return true
		}
		for _, s := range loopBody {
			ifStmt, ok := s.(*ast.If)
			if !ok {
				continue
			}
			if conditionHasModulo(ifStmt.Cond) && containsReturn(ifStmt.Then) {
				found = true
			}
		}
		return true
	})
	return found
}

func loopBodyOf(n ast.Node) ([]ast.Stmt, bool) {
	switch v := n.(type) {
	case *ast.For:
		return v.Body, true
	case *ast.While:
		return v.Body, true
	case *ast.Repeat:
		return v.Body, true
	default:
		return nil, false
	}
}

func conditionHasModulo(cond ast.Expr) bool {
	switch n := cond.(type) {
	case *ast.Condition:
		return exprHasModulo(n.Left) || exprHasModulo(n.Right)
	case *ast.BoolOp:
		return conditionHasModulo(n.Left) || conditionHasModulo(n.Right)
	case *ast.UnaryOp:
		return conditionHasModulo(n.Operand)
	default:
		return exprHasModulo(cond)
	}
}

func exprHasModulo(e ast.Expr) bool {
	b, ok := e.(*ast.BinOp)
	if !ok {
		return false
	}
	if b.Op == "%" {
		return true
	}
	return exprHasModulo(b.Left) || exprHasModulo(b.Right)
}

func containsReturn(stmts []ast.Stmt) bool {
	found := false
	ast.Inspect(stmts, func(n ast.Node) bool {
		if _, ok := n.(*ast.Return); ok {
			found = true
			return false
		}
		return true
	})
	return found
}

// hasEarlyReturnInLoop reports whether any loop body contains an If whose
// branch returns, the shape of a search that can stop before exhausting its
// range.
func hasEarlyReturnInLoop(stmts []ast.Stmt) bool {
	found := false
	ast.Inspect(stmts, func(n ast.Node) bool {
		loopBody, ok := loopBodyOf(n)
		if !ok {
			return true
		}
		ast.Inspect(loopBody, func(inner ast.Node) bool {
			ifStmt, ok := inner.(*ast.If)
			if !ok {
				return true
			}
			if containsReturn(ifStmt.Then) || containsReturn(ifStmt.Else) {
				found = true
			}
			return true
		})
		return true
	})
	return found
}

func bestCase(fnName string, algo AlgorithmType, complexity string) result.CaseAnalysis {
	switch algo {
	case AlgoFibonacci:
		return result.CaseAnalysis{
			CaseType:   result.CaseBest,
			Complexity: orDefault(complexity, "Θ(2^n)"),
			Scenario:   "Every n > 1 unfolds the full recursive call tree; there is no 'easier' input.",
			Example:    fnName + "(n) with n > 1 always runs the same call pattern.",
			Explanation: "Unmemoized recursive Fibonacci is deterministic: the call count for a given n is " +
				"fixed, so best, worst and average all coincide on the exponential bound.",
		}
	case AlgoBinarySearch:
		return result.CaseAnalysis{
			CaseType:    result.CaseBest,
			Complexity:  "Θ(1)",
			Scenario:    "The target sits exactly at the midpoint on the first comparison.",
			Example:     fnName + "([1,2,3,4,5], 3) is found on the first probe.",
			Explanation: "Only one comparison runs before the result is returned.",
		}
	case AlgoPrimeTest:
		return result.CaseAnalysis{
			CaseType:    result.CaseBest,
			Complexity:  "Θ(1)",
			Scenario:    "A trivial case (n ≤ 1) or a very small divisor is hit on the first iteration.",
			Example:     fnName + "(4) returns as soon as i = 2 divides n.",
			Explanation: "The best case exits through the base case or the first trial divisor that divides n.",
		}
	case AlgoDivideConquer:
		return result.CaseAnalysis{
			CaseType:   result.CaseBest,
			Complexity: "Θ(n log n)",
			Scenario:   "Divide-and-conquer splits land on reasonably balanced partitions.",
			Example:    fnName + "(n) runs ~log2(n) division levels with linear work per level.",
			Explanation: "For algorithms like merge sort (or quicksort with a reasonable pivot), the level " +
				"count is O(log n) and each level does O(n) work, giving Θ(n log n) even in the best case.",
		}
	case AlgoRecursive:
		return result.CaseAnalysis{
			CaseType:   result.CaseBest,
			Complexity: orDefault(complexity, "Θ(n)"),
			Scenario:   "Deterministic recursion with no data-dependent early exit.",
			Example:    fnName + "(n) always recurses to the same depth for that n.",
			Explanation: "When recursion depends only on the size parameter (e.g. factorial), every input " +
				"of size n does the same work, so best, worst and average coincide.",
		}
	case AlgoLinearSearch:
		return result.CaseAnalysis{
			CaseType:    result.CaseBest,
			Complexity:  "Θ(1)",
			Scenario:    "The target is the first element, or the collection is empty.",
			Example:     fnName + "([5,2,3], 5) is found at index 0.",
			Explanation: "A linear search can stop after checking only the first element.",
		}
	case AlgoLinearProcessing:
		return result.CaseAnalysis{
			CaseType:   result.CaseBest,
			Complexity: orDefault(complexity, "Θ(n)"),
			Scenario:   "Every element must be processed; there is no early exit.",
			Example:    fnName + "(n) visits every element (e.g. summing an array).",
			Explanation: "Pure processing algorithms (sum, accumulation, transform) never exit early, so " +
				"the whole input is always traversed.",
		}
	case AlgoNestedLoops:
		return result.CaseAnalysis{
			CaseType:   result.CaseBest,
			Complexity: orDefault(complexity, "Θ(n^2)"),
			Scenario:   "Every nested loop walks its full range regardless of input values.",
			Example:    "a triple loop over n with no data-dependent exit.",
			Explanation: "Loop bounds that don't depend on the data give the same polynomial bound in every case.",
		}
	default:
		return result.CaseAnalysis{
			CaseType:    result.CaseBest,
			Complexity:  "Θ(1)",
			Scenario:    "Direct operation with no loop or recursion.",
			Example:     "a simple assignment or array access.",
			Explanation: "Running time does not depend on input size.",
		}
	}
}

func worstCase(fnName string, algo AlgorithmType, complexity string) result.CaseAnalysis {
	switch algo {
	case AlgoNestedLoops:
		return result.CaseAnalysis{
			CaseType:    result.CaseWorst,
			Complexity:  orDefault(complexity, "Θ(n^2)"),
			Scenario:    "Every nested loop walks its full range.",
			Example:     "bubble sort over a reverse-sorted array; a triple loop over n.",
			Explanation: "The mathematical engine's dominant term is the worst case bound directly.",
		}
	case AlgoDivideConquer:
		if isQuicksortLike(fnName) {
			return result.CaseAnalysis{
				CaseType:   result.CaseWorst,
				Complexity: "Θ(n^2)",
				Scenario:   "Maximally unbalanced partitions (the pivot is always the min or max element).",
				Example:    fnName + " over an already-sorted array using the first element as pivot.",
				Explanation: "When the pivot splits the array into 1 and n-1 elements every call, the " +
					"recurrence T(n) = T(n-1) + O(n) solves to Θ(n^2).",
			}
		}
		return result.CaseAnalysis{
			CaseType:   result.CaseWorst,
			Complexity: orDefault(complexity, "Θ(n log n)"),
			Scenario:   "Reasonably balanced splits at every recursion level.",
			Example:    fnName + "(n), merge-sort-shaped, splitting in halves.",
			Explanation: "When the split does not adversarially depend on the data distribution, " +
				"T(n) = 2T(n/2) + O(n) solves to Θ(n log n).",
		}
	case AlgoRecursive:
		return result.CaseAnalysis{
			CaseType:    result.CaseWorst,
			Complexity:  orDefault(complexity, "Θ(n)"),
			Scenario:    "Maximum recursion depth for an input of size n.",
			Example:     fnName + "(n) recursing without pruning or memoization.",
			Explanation: "The worst-case bound matches the mathematical engine's output directly.",
		}
	case AlgoFibonacci:
		return result.CaseAnalysis{
			CaseType:    result.CaseWorst,
			Complexity:  "Θ(2^n)",
			Scenario:    "Any n > 1 (the algorithm is fully deterministic).",
			Example:     fnName + "(10) unfolds into ~2^10 recursive calls.",
			Explanation: "Unmemoized recursive Fibonacci is always exponential regardless of input values.",
		}
	case AlgoBinarySearch:
		return result.CaseAnalysis{
			CaseType:    result.CaseWorst,
			Complexity:  "Θ(log n)",
			Scenario:    "The target is absent, or found only after discarding nearly every subarray.",
			Example:     fnName + "([1..8], 9) explores ~log2(8) divisions.",
			Explanation: "Each comparison halves the search space; the worst case takes Θ(log n) steps.",
		}
	case AlgoPrimeTest:
		return result.CaseAnalysis{
			CaseType:    result.CaseWorst,
			Complexity:  "Θ(n)",
			Scenario:    "n is prime, or has no small divisor; the loop checks every candidate.",
			Example:     fnName + "(p) for a large prime p checks every i from 2 to n-1.",
			Explanation: "The worst case tests every candidate divisor up to n-1, a linear number of iterations.",
		}
	case AlgoLinearSearch:
		return result.CaseAnalysis{
			CaseType:    result.CaseWorst,
			Complexity:  "Θ(n)",
			Scenario:    "The target is last in the collection, or absent entirely.",
			Example:     fnName + "([1,2,3,4,5], 5) takes n comparisons.",
			Explanation: "The whole collection is walked to the end.",
		}
	case AlgoLinearProcessing:
		return result.CaseAnalysis{
			CaseType:    result.CaseWorst,
			Complexity:  orDefault(complexity, "Θ(n)"),
			Scenario:    "Every element must be processed, with no early exit.",
			Example:     fnName + "(n) processes exactly n elements.",
			Explanation: "Processing algorithms must complete every iteration; worst and best coincide.",
		}
	default:
		return result.CaseAnalysis{
			CaseType:    result.CaseWorst,
			Complexity:  "Θ(1)",
			Scenario:    "Direct operation with no loop or recursion.",
			Example:     "a + b.",
			Explanation: "Running time independent of input size.",
		}
	}
}

func averageCase(fnName string, algo AlgorithmType, complexity string) result.CaseAnalysis {
	switch algo {
	case AlgoFibonacci:
		return result.CaseAnalysis{
			CaseType:    result.CaseAverage,
			Complexity:  "Θ(2^n)",
			Scenario:    "Any n > 1; the call count depends only on n, not the data.",
			Example:     fnName + "(n) always unfolds ~φ^n calls, φ≈1.618.",
			Explanation: "Unmemoized Fibonacci has no meaningful 'average case' since it never depends on data values.",
		}
	case AlgoBinarySearch:
		return result.CaseAnalysis{
			CaseType:    result.CaseAverage,
			Complexity:  "Θ(log n)",
			Scenario:    "The target sits at a random position in the sorted array, or may be absent.",
			Example:     "~log2(n) comparisons on average.",
			Explanation: "Each comparison discards half the search space, so expected steps scale with log n.",
		}
	case AlgoPrimeTest:
		return result.CaseAnalysis{
			CaseType:    result.CaseAverage,
			Complexity:  "Θ(n)",
			Scenario:    "n is an arbitrary integer with no particular bias toward primes or easy composites.",
			Example:     "on average a fraction of candidate divisors are tried before a conclusion.",
			Explanation: "Although many composites are rejected early, the expected iteration count is still linear in n.",
		}
	case AlgoDivideConquer:
		return result.CaseAnalysis{
			CaseType:   result.CaseAverage,
			Complexity: "Θ(n log n)",
			Scenario:   "Randomly distributed input data.",
			Example:    fnName + " with random pivots or reasonably balanced splits.",
			Explanation: "Divide-and-conquer algorithms keep Θ(n log n) on average; randomized quicksort " +
				"avoids the Θ(n^2) worst case, and merge sort is always Θ(n log n).",
		}
	case AlgoRecursive:
		return result.CaseAnalysis{
			CaseType:   result.CaseAverage,
			Complexity: orDefault(complexity, "Θ(n)"),
			Scenario:   "Depends on the recursion shape: linear (one call) or exponential (multiple).",
			Example:    fnName + "(n): linear recursion makes n calls; exponential recursion unfolds the full tree.",
			Explanation: "Average complexity depends on structure: linear T(n)=T(n-1)+c is Θ(n); " +
				"unmemoized exponential recursion is Θ(2^n).",
		}
	case AlgoNestedLoops:
		return result.CaseAnalysis{
			CaseType:   result.CaseAverage,
			Complexity: orDefault(complexity, "Θ(n^2)"),
			Scenario:   "Random input data with no change to the loop bounds.",
			Example:    "sorts and nested-loop algorithms that always walk their full ranges.",
			Explanation: "When loop bounds do not depend on the data distribution, the average case has the same order as the worst case.",
		}
	case AlgoLinearSearch:
		return result.CaseAnalysis{
			CaseType:    result.CaseAverage,
			Complexity:  "Θ(n)",
			Scenario:    "The target is at a random position.",
			Example:     "on average the target is found halfway through the collection.",
			Explanation: "On average, half of the collection is walked.",
		}
	case AlgoLinearProcessing:
		return result.CaseAnalysis{
			CaseType:   result.CaseAverage,
			Complexity: orDefault(complexity, "Θ(n)"),
			Scenario:   "The algorithm processes every element regardless of its value.",
			Example:    fnName + "(n) always processes n elements.",
			Explanation: "There is no meaningful variation in the average case: every element is processed unconditionally.",
		}
	default:
		return result.CaseAnalysis{
			CaseType:    result.CaseAverage,
			Complexity:  "Θ(1)",
			Scenario:    "Direct operation.",
			Example:     "assignment or direct access.",
			Explanation: "Always constant time.",
		}
	}
}

func isQuicksortLike(fnName string) bool {
	lower := strings.ToLower(fnName)
	return strings.Contains(lower, "quick") || strings.Contains(lower, "qsort")
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

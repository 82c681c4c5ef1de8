package analysis

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/complexo-dev/complexo/ast"
	"github.com/complexo-dev/complexo/expr"
	"github.com/complexo-dev/complexo/result"
)

// RecursionClassifier implements spec §4.2: it inspects a single function,
// collects its self-call sites, and classifies the recurrence family by
// (#calls, argument shape, exclusivity) rather than by identifier-name
// heuristics — except the midpoint-substring tie-break and the
// binary-search name marker (isBinarySearchName).
//
// Grounded on analysis/recursion.go's Tarjan-based recursion detector: the
// "walk call sites, classify by shape" idea is kept, rewritten from a
// multi-function call-graph search into a single-function self-call
// classifier, since pseudocode functions never call into a sibling function
// recursively in a way that matters to this spec.
type RecursionClassifier struct {
	strCache *expr.Cache
}

// NewRecursionClassifier creates a classifier with its own expression cache.
func NewRecursionClassifier() *RecursionClassifier {
	return &RecursionClassifier{strCache: expr.NewCache(256)}
}

// argShape summarizes how a self-call's arguments relate to the enclosing
// function's parameters, the only signal the classifier uses besides call
// count and exclusivity.
type argShape struct {
	hasDivision     bool
	divisor         int
	hasDecrement    bool
	decrementBy     int
	decrementParam  string
	usesMidpointVar bool
}

// Classify runs the full §4.2 algorithm over fn.
func (c *RecursionClassifier) Classify(fn *ast.Function) result.RecursionInfo {
	info := result.RecursionInfo{BaseCases: map[string]string{}}

	var calls []*ast.Call
	ast.Inspect(fn.Body, func(n ast.Node) bool {
		if call, ok := n.(*ast.Call); ok && call.Name == fn.Name {
			calls = append(calls, call)
		}
		return true
	})
	info.HasRecursion = len(calls) > 0

	for _, call := range calls {
		args := make([]string, len(call.Args))
		for i, a := range call.Args {
			args[i] = c.strCache.ToString(a)
		}
		info.Calls = append(info.Calls, result.CallSite{Args: args})
	}

	collectBaseCases(fn.Body, info.BaseCases, c.strCache)

	ast.Inspect(fn.Body, func(n ast.Node) bool {
		ifStmt, ok := n.(*ast.If)
		if !ok {
			return true
		}
		if hasRecursiveReturn(ifStmt.Then, fn.Name) && hasRecursiveReturn(ifStmt.Else, fn.Name) {
			info.ExclusiveBranchCalls = true
		}
		return true
	})

	if len(calls) == 0 {
		info.Pattern = result.PatternNone
		info.Relation = ""
		return info
	}

	shapes := make([]argShape, len(calls))
	for i, call := range calls {
		shapes[i] = shapeOf(call, fn.Params)
	}
	hasLoop := containsLoop(fn.Body)

	switch {
	case len(calls) == 1:
		if shapes[0].hasDivision && shapes[0].divisor > 1 {
			info.Pattern = result.PatternDivideAndConquer
			info.Relation = fmt.Sprintf("T(n) = T(n/%d) + O(1)", shapes[0].divisor)
		} else {
			info.Pattern = result.PatternLinear
			info.Relation = "T(n) = T(n-1) + O(1)"
		}

	case len(calls) == 2 && info.ExclusiveBranchCalls:
		info.Pattern = result.PatternBinaryExclusive
		info.Relation = "T(n) = T(n/2) + O(1)"

	case len(calls) == 2 && sameParamDifferentDecrements(shapes):
		if isBinarySearchName(fn.Name) {
			// Name-marker tie-break (spec §4.4): a function lexically named
			// like a binary search that nonetheless presents as two
			// differently-decremented self-calls is a halved-interval search
			// with an off-by-one on each branch, not a Fibonacci-shaped
			// double recursion.
			info.Pattern = result.PatternDivideAndConquer
			info.Relation = "T(n) = T(n/2) + O(1)"
			break
		}
		info.Pattern = result.PatternBinary
		info.Relation = "T(n) = T(n-1) + T(n-2) + O(1)"

	case len(calls) == 2 && (shapes[0].hasDivision || shapes[1].hasDivision || shapes[0].usesMidpointVar || shapes[1].usesMidpointVar):
		info.Pattern = result.PatternDivideAndConquer
		if hasLoop {
			info.Relation = "T(n) = 2T(n/2) + O(n)"
		} else {
			info.Relation = "T(n) = 2T(n/2) + O(1)"
		}

	case len(calls) == 2 && shapes[0].hasDecrement && shapes[1].hasDecrement:
		// Both branches decrement the size parameter but not into the
		// Fibonacci-shaped different-constants case above: two unconditional
		// self-calls on n-1, exponential by repeated doubling.
		info.Pattern = result.PatternBinary
		info.Relation = "T(n) = 2T(n-1) + O(1)"

	default:
		info.Pattern = result.PatternMultiple
		info.Relation = fmt.Sprintf("T(n) = %dT(n-1) + O(1)", len(calls))
	}

	return info
}

func sameParamDifferentDecrements(shapes []argShape) bool {
	if !shapes[0].hasDecrement || !shapes[1].hasDecrement {
		return false
	}
	return shapes[0].decrementParam == shapes[1].decrementParam &&
		shapes[0].decrementParam != "" &&
		shapes[0].decrementBy != shapes[1].decrementBy
}

// shapeOf inspects every argument expression of a self-call, looking for a
// division by an integer constant > 1, a subtraction of a known parameter by
// an integer constant, or a reference to a midpoint-looking identifier.
func shapeOf(call *ast.Call, params []string) argShape {
	var shape argShape
	for _, arg := range call.Args {
		walkArgShape(arg, params, &shape)
	}
	return shape
}

func walkArgShape(e ast.Expr, params []string, shape *argShape) {
	switch n := e.(type) {
	case *ast.BinOp:
		if n.Op == "/" {
			if num, ok := n.Right.(*ast.Number); ok && num.Value > 1 {
				shape.hasDivision = true
				shape.divisor = int(num.Value)
			}
		}
		if n.Op == "-" {
			if v, ok := n.Left.(*ast.Var); ok {
				if num, ok2 := n.Right.(*ast.Number); ok2 && isParam(v.Name, params) {
					shape.hasDecrement = true
					shape.decrementBy = int(num.Value)
					shape.decrementParam = v.Name
				}
			}
		}
		walkArgShape(n.Left, params, shape)
		walkArgShape(n.Right, params, shape)
	case *ast.UnaryOp:
		walkArgShape(n.Operand, params, shape)
	case *ast.Var:
		if strings.Contains(strings.ToLower(n.Name), "mid") {
			shape.usesMidpointVar = true
		}
	case *ast.ArrayAccess:
		walkArgShape(n.Index, params, shape)
	case *ast.MatrixAccess:
		walkArgShape(n.Row, params, shape)
		walkArgShape(n.Col, params, shape)
	}
}

func isParam(name string, params []string) bool {
	for _, p := range params {
		if p == name {
			return true
		}
	}
	return false
}

// hasRecursiveReturn reports whether any Return statement reachable under
// stmts (including inside nested If/For/While/Repeat blocks) returns an
// expression that contains a call to fnName, composed via arithmetic or not.
func hasRecursiveReturn(stmts []ast.Stmt, fnName string) bool {
	found := false
	ast.Inspect(stmts, func(n ast.Node) bool {
		if found {
			return false
		}
		ret, ok := n.(*ast.Return)
		if !ok || ret.Value == nil {
			return true
		}
		ast.Inspect([]ast.Stmt{&ast.ExprStmt{X: ret.Value}}, func(inner ast.Node) bool {
			if call, ok := inner.(*ast.Call); ok && call.Name == fnName {
				found = true
				return false
			}
			return true
		})
		return true
	})
	return found
}

func containsLoop(stmts []ast.Stmt) bool {
	found := false
	ast.Inspect(stmts, func(n ast.Node) bool {
		switch n.(type) {
		case *ast.For, *ast.While, *ast.Repeat:
			found = true
			return false
		}
		return true
	})
	return found
}

// collectBaseCases records the non-recursive terminating branches of every
// conditional in a function, nested ones included, as the base_cases map of
// spec.md §3.
func collectBaseCases(stmts []ast.Stmt, baseCases map[string]string, cache *expr.Cache) {
	ast.Inspect(stmts, func(n ast.Node) bool {
		ifStmt, ok := n.(*ast.If)
		if !ok {
			return true
		}
		condStr := cache.ToString(ifStmt.Cond)
		if returnsWithoutRecursion(ifStmt.Then) {
			baseCases["T("+condStr+")"] = "O(1)"
		}
		if ifStmt.Else != nil && returnsWithoutRecursion(ifStmt.Else) {
			baseCases["T(not "+condStr+")"] = "O(1)"
		}
		return true
	})
}

func returnsWithoutRecursion(stmts []ast.Stmt) bool {
	if len(stmts) == 0 {
		return false
	}
	sawReturn := false
	for _, s := range stmts {
		if _, ok := s.(*ast.Return); ok {
			sawReturn = true
		}
	}
	if !sawReturn {
		return false
	}
	recursive := false
	ast.Inspect(stmts, func(n ast.Node) bool {
		if _, ok := n.(*ast.Call); ok {
			recursive = true
			return false
		}
		return true
	})
	return !recursive
}

// formatConst is a small helper used elsewhere in the analysis package to
// render an integer constant the way pseudocode source would.
func formatConst(v int64) string { return strconv.FormatInt(v, 10) }

// isBinarySearchName reports whether name carries one of the lexical
// markers spec §4.4 names for disambiguating a halved-interval search from
// a Fibonacci-shaped double recursion: "busqueda_binaria" or
// "binary_search".
func isBinarySearchName(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "busqueda_binaria") || strings.Contains(lower, "binary_search")
}

package analysis_test

import (
	"testing"

	"github.com/complexo-dev/complexo/analysis"
	"github.com/complexo-dev/complexo/result"
	"github.com/stretchr/testify/assert"
)

func TestSolveEquation_DivideConquerMasterCases(t *testing.T) {
	s := analysis.NewSolver()

	method, complexity := s.SolveEquation("T(n) = T(n/2) + O(1)")
	assert.Equal(t, result.MethodMaster, method)
	assert.Equal(t, "log n", complexity)

	method, complexity = s.SolveEquation("T(n) = 2T(n/2) + O(n)")
	assert.Equal(t, result.MethodMaster, method)
	assert.Equal(t, "n log n", complexity)

	method, complexity = s.SolveEquation("T(n) = T(n/2) + O(n)")
	assert.Equal(t, result.MethodMaster, method)
	assert.Equal(t, "n", complexity)

	method, complexity = s.SolveEquation("T(n) = 4T(n/2) + O(n)")
	assert.Equal(t, result.MethodMaster, method)
	assert.Equal(t, "n^2", complexity)
}

func TestSolveEquation_AdditiveTwoTermIsFibonacciShaped(t *testing.T) {
	s := analysis.NewSolver()

	method, complexity := s.SolveEquation("T(n) = T(n-1) + T(n-2) + O(1)")
	assert.Equal(t, result.MethodTree, method)
	assert.Equal(t, "2^n", complexity)
}

func TestSolveEquation_MultiplicativeRecurrence(t *testing.T) {
	s := analysis.NewSolver()

	method, complexity := s.SolveEquation("T(n) = 2T(n-1) + O(1)")
	assert.Equal(t, result.MethodSubstitution, method)
	assert.Equal(t, "2^n", complexity)
}

func TestSolveEquation_LinearDecrement(t *testing.T) {
	s := analysis.NewSolver()

	method, complexity := s.SolveEquation("T(n) = T(n-1) + O(1)")
	assert.Equal(t, result.MethodSubstitution, method)
	assert.Equal(t, "n", complexity)

	method, complexity = s.SolveEquation("T(n) = T(n-1) + O(n)")
	assert.Equal(t, result.MethodSubstitution, method)
	assert.Equal(t, "n^2", complexity)
}

func TestSolveEquation_UnrecognizedShapeFallsBackToDerived(t *testing.T) {
	s := analysis.NewSolver()

	method, complexity := s.SolveEquation("T(n) = T(n-1) * T(n-2)")
	assert.Equal(t, result.MethodDerived, method)
	assert.Equal(t, "?", complexity)
}

package complexo_test

import (
	"context"
	"testing"

	"github.com/complexo-dev/complexo"
	"github.com/complexo-dev/complexo/result"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const factorialSrc = `
function factorial(n)
begin
  if n <= 1 then begin return 1 end
  else begin return n * call factorial(n - 1) end
end
`

const binarySearchSrc = `
function busqueda_binaria(arr, izq, der, x)
begin
  if izq > der then begin return -1 end
  mid = (izq + der) / 2
  if arr[mid] == x then begin return mid end
  if arr[mid] > x then begin return call busqueda_binaria(arr, izq, mid - 1, x) end
  else begin return call busqueda_binaria(arr, mid + 1, der, x) end
end
`

const mergeSortSrc = `
function merge_sort(n)
begin
  if n <= 1 then begin return 1 end
  call merge_sort(n/2)
  call merge_sort(n/2)
  for i = 0 to n do begin a = 1 end
end
`

const fibSrc = `
function fib(n)
begin
  if n <= 1 then begin return n end
  return call fib(n-1) + call fib(n-2)
end
`

const stressSrc = `
function stress(n)
begin
  s = 0
  for i=1 to n do for j=1 to n do for k=1 to n do for t=1 to n do begin s = s + 1 end
  return s
end
`

const constantSrc = `function c(n) begin x = 5; y = x + 10; return y end`

func TestOrchestrator_Factorial(t *testing.T) {
	orch := complexo.NewOrchestrator(nil)
	res := orch.Analyze(factorialSrc, "factorial")

	require.Empty(t, res.Error)
	assert.True(t, res.IsRecursive)
	assert.Equal(t, result.PatternLinear, res.RecursionPattern)
	assert.Equal(t, "T(n) = T(n-1) + O(1)", res.HeurEquation)
	assert.Equal(t, "Θ(n)", string(res.HeurNotation)+"("+res.HeurComplexity+")")
	for _, c := range res.Cases {
		assert.Equal(t, "Θ(n)", c.Complexity)
	}
}

func TestOrchestrator_BinarySearch(t *testing.T) {
	orch := complexo.NewOrchestrator(nil)
	res := orch.Analyze(binarySearchSrc, "busqueda_binaria")

	require.Empty(t, res.Error)
	assert.Equal(t, result.PatternBinaryExclusive, res.RecursionPattern)
	assert.Equal(t, "T(n) = T(n/2) + O(1)", res.HeurEquation)
	assert.Equal(t, "log n", res.HeurComplexity)

	var best, worst result.CaseAnalysis
	for _, c := range res.Cases {
		switch c.CaseType {
		case result.CaseBest:
			best = c
		case result.CaseWorst:
			worst = c
		}
	}
	assert.Equal(t, "Θ(1)", best.Complexity)
	assert.Equal(t, "Θ(log n)", worst.Complexity)
}

func TestOrchestrator_MergeSort(t *testing.T) {
	orch := complexo.NewOrchestrator(nil)
	res := orch.Analyze(mergeSortSrc, "merge_sort")

	require.Empty(t, res.Error)
	assert.Equal(t, "T(n) = 2T(n/2) + O(n)", res.HeurEquation)
	assert.Equal(t, "n log n", res.HeurComplexity)
	assert.Equal(t, result.MethodMaster, res.HeurMethod)
}

func TestOrchestrator_Fibonacci(t *testing.T) {
	orch := complexo.NewOrchestrator(nil)
	res := orch.Analyze(fibSrc, "fib")

	require.Empty(t, res.Error)
	assert.Equal(t, "T(n) = T(n-1) + T(n-2) + O(1)", res.HeurEquation)
	assert.Equal(t, "2^n", res.HeurComplexity)
	assert.Equal(t, result.MethodTree, res.HeurMethod)
}

func TestOrchestrator_NestedLoops(t *testing.T) {
	orch := complexo.NewOrchestrator(nil)
	res := orch.Analyze(stressSrc, "stress")

	require.Empty(t, res.Error)
	assert.False(t, res.IsRecursive)
	assert.Equal(t, "n^4", res.HeurComplexity)
}

func TestOrchestrator_ConstantTime(t *testing.T) {
	orch := complexo.NewOrchestrator(nil)
	res := orch.Analyze(constantSrc, "c")

	require.Empty(t, res.Error)
	assert.False(t, res.IsRecursive)
	assert.Equal(t, "1", res.HeurComplexity)
	for _, c := range res.Cases {
		assert.Equal(t, "Θ(1)", c.Complexity)
	}
}

func TestOrchestrator_CachesIdenticalInput(t *testing.T) {
	orch := complexo.NewOrchestrator(nil)
	first := orch.Analyze(factorialSrc, "factorial")
	second := orch.Analyze(factorialSrc, "factorial")

	assert.Equal(t, first.HeurEquation, second.HeurEquation)
	assert.Equal(t, first.CanonicalComplexity, second.CanonicalComplexity)
}

func TestOrchestrator_ParseFailureIsSurfacedAsError(t *testing.T) {
	orch := complexo.NewOrchestrator(nil)
	res := orch.Analyze("function broken(n begin return n end", "broken")

	assert.NotEmpty(t, res.Error)
	assert.Equal(t, "N/A", res.FuncName)
}

func TestOrchestrator_BatchAnalyze(t *testing.T) {
	orch := complexo.NewOrchestrator(nil)
	sources := []complexo.Source{
		{Name: "factorial.pc", Code: factorialSrc, Hint: "factorial"},
		{Name: "fib.pc", Code: fibSrc, Hint: "fib"},
	}

	results, err := orch.BatchAnalyze(context.Background(), sources)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "factorial", results[0].FuncName)
	assert.Equal(t, "fib", results[1].FuncName)
}

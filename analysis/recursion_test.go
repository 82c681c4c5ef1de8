package analysis_test

import (
	"testing"

	"github.com/complexo-dev/complexo/analysis"
	"github.com/complexo-dev/complexo/parser"
	"github.com/complexo-dev/complexo/result"
	"github.com/stretchr/testify/require"
)

func classifyFirst(t *testing.T, src string) result.RecursionInfo {
	t.Helper()
	prog, err := parser.Parse(src)
	require.NoError(t, err)
	require.NotEmpty(t, prog.Functions)
	return analysis.NewRecursionClassifier().Classify(prog.Functions[0])
}

func TestClassify_SingleDecrementIsLinear(t *testing.T) {
	info := classifyFirst(t, `
function factorial(n)
begin
  if n <= 1 then begin return 1 end
  else begin return n * call factorial(n - 1) end
end
`)
	require.True(t, info.HasRecursion)
	require.Equal(t, result.PatternLinear, info.Pattern)
	require.Equal(t, "T(n) = T(n-1) + O(1)", info.Relation)
}

func TestClassify_SingleDivisionIsDivideAndConquer(t *testing.T) {
	info := classifyFirst(t, `
function halve(n)
begin
  if n <= 1 then begin return 1 end
  return call halve(n / 2)
end
`)
	require.True(t, info.HasRecursion)
	require.Equal(t, result.PatternDivideAndConquer, info.Pattern)
	require.Equal(t, "T(n) = T(n/2) + O(1)", info.Relation)
}

func TestClassify_ExclusiveBranchesAreBinaryExclusive(t *testing.T) {
	info := classifyFirst(t, `
function busqueda_binaria(arr, izq, der, x)
begin
  if izq > der then begin return -1 end
  mid = (izq + der) / 2
  if arr[mid] == x then begin return mid end
  if arr[mid] > x then begin return call busqueda_binaria(arr, izq, mid - 1, x) end
  else begin return call busqueda_binaria(arr, mid + 1, der, x) end
end
`)
	require.True(t, info.ExclusiveBranchCalls)
	require.Equal(t, result.PatternBinaryExclusive, info.Pattern)
	require.Equal(t, "T(n) = T(n/2) + O(1)", info.Relation)
}

func TestClassify_DifferentDecrementsIsFibonacciShaped(t *testing.T) {
	info := classifyFirst(t, `
function fib(n)
begin
  if n <= 1 then begin return n end
  return call fib(n-1) + call fib(n-2)
end
`)
	require.Equal(t, result.PatternBinary, info.Pattern)
	require.Equal(t, "T(n) = T(n-1) + T(n-2) + O(1)", info.Relation)
}

func TestClassify_TwoDivisionsWithLoopIsDivideAndConquer(t *testing.T) {
	info := classifyFirst(t, `
function merge_sort(n)
begin
  if n <= 1 then begin return 1 end
  call merge_sort(n/2)
  call merge_sort(n/2)
  for i = 0 to n do begin a = 1 end
end
`)
	require.Equal(t, result.PatternDivideAndConquer, info.Pattern)
	require.Equal(t, "T(n) = 2T(n/2) + O(n)", info.Relation)
}

func TestClassify_BinarySearchNameOverridesFibonacciShape(t *testing.T) {
	info := classifyFirst(t, `
function binary_search(n)
begin
  if n <= 1 then begin return 1 end
  return call binary_search(n-1) + call binary_search(n-2)
end
`)
	require.Equal(t, result.PatternDivideAndConquer, info.Pattern)
	require.Equal(t, "T(n) = T(n/2) + O(1)", info.Relation)
}

func TestClassify_NoSelfCallIsPatternNone(t *testing.T) {
	info := classifyFirst(t, `function c(n) begin x = 5; y = x + 10; return y end`)
	require.False(t, info.HasRecursion)
	require.Equal(t, result.PatternNone, info.Pattern)
	require.Empty(t, info.Relation)
}

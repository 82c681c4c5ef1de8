package analysis_test

import (
	"testing"

	"github.com/complexo-dev/complexo/analysis"
	"github.com/complexo-dev/complexo/parser"
	"github.com/complexo-dev/complexo/result"
	"github.com/stretchr/testify/require"
)

func casesFor(t *testing.T, src, hintComplexity string) []result.CaseAnalysis {
	t.Helper()
	prog, err := parser.Parse(src)
	require.NoError(t, err)
	require.NotEmpty(t, prog.Functions)
	fn := prog.Functions[0]
	info := analysis.NewRecursionClassifier().Classify(fn)
	return analysis.NewCaseAnalyzer().AnalyzeCases(fn, info, hintComplexity)
}

func caseOf(t *testing.T, cases []result.CaseAnalysis, ct result.CaseType) result.CaseAnalysis {
	t.Helper()
	for _, c := range cases {
		if c.CaseType == ct {
			return c
		}
	}
	t.Fatalf("no case of type %s", ct)
	return result.CaseAnalysis{}
}

func TestAnalyzeCases_BinarySearchBestBeatsWorst(t *testing.T) {
	cases := casesFor(t, `
function busqueda_binaria(arr, izq, der, x)
begin
  if izq > der then begin return -1 end
  mid = (izq + der) / 2
  if arr[mid] == x then begin return mid end
  if arr[mid] > x then begin return call busqueda_binaria(arr, izq, mid - 1, x) end
  else begin return call busqueda_binaria(arr, mid + 1, der, x) end
end
`, "Θ(log n)")

	require.Len(t, cases, 3)
	require.Equal(t, "Θ(1)", caseOf(t, cases, result.CaseBest).Complexity)
	require.Equal(t, "Θ(log n)", caseOf(t, cases, result.CaseWorst).Complexity)
	require.Equal(t, "Θ(log n)", caseOf(t, cases, result.CaseAverage).Complexity)
}

func TestAnalyzeCases_FibonacciCoincidesAcrossAllThree(t *testing.T) {
	cases := casesFor(t, `
function fib(n)
begin
  if n <= 1 then begin return n end
  return call fib(n-1) + call fib(n-2)
end
`, "Θ(2^n)")

	for _, c := range cases {
		require.Equal(t, "Θ(2^n)", c.Complexity)
	}
}

func TestAnalyzeCases_ConstantFunctionHasNoLoopOrRecursion(t *testing.T) {
	cases := casesFor(t, `function c(n) begin x = 5; y = x + 10; return y end`, "Θ(1)")

	for _, c := range cases {
		require.Equal(t, "Θ(1)", c.Complexity)
	}
}

func TestAnalyzeCases_NestedLoopsWorstMatchesDepth(t *testing.T) {
	cases := casesFor(t, `
function stress(n)
begin
  s = 0
  for i=1 to n do for j=1 to n do for k=1 to n do for t=1 to n do begin s = s + 1 end
  return s
end
`, "Θ(n^4)")

	require.Equal(t, "Θ(n^4)", caseOf(t, cases, result.CaseBest).Complexity)
	require.Equal(t, "Θ(n^4)", caseOf(t, cases, result.CaseWorst).Complexity)
	require.Equal(t, "Θ(n^4)", caseOf(t, cases, result.CaseAverage).Complexity)
}

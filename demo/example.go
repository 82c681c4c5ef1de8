// Command demo walks through the six end-to-end scenarios the analyzer is
// expected to classify correctly: linear recursion, exclusive-branch binary
// recursion, divide-and-conquer, additive binary recursion, nested loops,
// and constant time.
package main

import (
	"fmt"

	"github.com/complexo-dev/complexo"
)

var samples = []struct {
	name string
	code string
}{
	{
		name: "factorial",
		code: `function factorial(n)
begin
  if n <= 1 then begin return 1 end
  else begin return n * call factorial(n - 1) end
end`,
	},
	{
		name: "busqueda_binaria",
		code: `function busqueda_binaria(arr, izq, der, x)
begin
  if izq > der then begin return -1 end
  mid = (izq + der) / 2
  if arr[mid] == x then begin return mid end
  if arr[mid] > x then begin return call busqueda_binaria(arr, izq, mid - 1, x) end
  else begin return call busqueda_binaria(arr, mid + 1, der, x) end
end`,
	},
	{
		name: "merge_sort",
		code: `function merge_sort(n)
begin
  if n <= 1 then begin return 1 end
  call merge_sort(n/2)
  call merge_sort(n/2)
  for i = 0 to n do begin a = 1 end
end`,
	},
	{
		name: "fib",
		code: `function fib(n)
begin
  if n <= 1 then begin return n end
  return call fib(n-1) + call fib(n-2)
end`,
	},
	{
		name: "stress",
		code: `function stress(n)
begin
  s = 0
  for i=1 to n do for j=1 to n do for k=1 to n do for t=1 to n do begin s = s + 1 end
  return s
end`,
	},
	{
		name: "c",
		code: `function c(n) begin x = 5; y = x + 10; return y end`,
	},
}

func main() {
	orch := complexo.NewOrchestrator(nil)

	for _, sample := range samples {
		res := orch.Analyze(sample.code, sample.name)
		fmt.Printf("=== %s ===\n", sample.name)
		if res.Error != "" {
			fmt.Printf("error: %s\n\n", res.Error)
			continue
		}
		fmt.Printf("recursive:  %v (%s)\n", res.IsRecursive, res.RecursionPattern)
		fmt.Printf("equation:   %s\n", res.HeurEquation)
		fmt.Printf("complexity: %s\n", res.CanonicalComplexity)
		for _, c := range res.Cases {
			fmt.Printf("  %-8s %s\n", c.CaseType, c.Complexity)
		}
		fmt.Println()
	}
}

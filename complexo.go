// Package complexo analyzes pseudocode algorithms and derives asymptotic
// time-complexity bounds, recurrence equations, and best/worst/average case
// characterizations. Orchestrator is the single entry point: it runs the
// parse → classify → math → asymptotic → cases → tree pipeline and returns
// an immutable AnalysisResult that never carries a Go error — failures are
// recorded in the result's Error field instead.
package complexo

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/complexo-dev/complexo/analysis"
	"github.com/complexo-dev/complexo/ast"
	"github.com/complexo-dev/complexo/history"
	"github.com/complexo-dev/complexo/parser"
	"github.com/complexo-dev/complexo/result"
	"github.com/golang/groupcache/lru"
	"golang.org/x/sync/errgroup"
)

// Orchestrator runs the analysis pipeline and caches results by a hash of
// the input source, per spec §4.7. A single Orchestrator is safe for
// concurrent use by multiple goroutines; BatchAnalyze relies on this.
//
// Grounded on surrealcode.go's Analyzer: a long-lived struct owning an
// expression cache plus the database handle, with directory-wide work
// fanned out through errgroup. Here the fan-out is over independent source
// strings rather than files on disk, and the five analysis engines replace
// the single go/ast-walking parseGoFile pass.
type Orchestrator struct {
	db history.DB

	mu    sync.Mutex
	cache *lru.Cache

	classifier   *analysis.RecursionClassifier
	mathEngine   *analysis.MathEngine
	asymEngine   *analysis.AsymptoticEngine
	caseAnalyzer *analysis.CaseAnalyzer
	treeBuilder  *analysis.TreeBuilder
}

// NewOrchestrator creates an Orchestrator. db may be nil; persistence is
// optional (see StoreResult).
func NewOrchestrator(db history.DB) *Orchestrator {
	return &Orchestrator{
		db:           db,
		cache:        lru.New(1024),
		classifier:   analysis.NewRecursionClassifier(),
		mathEngine:   analysis.NewMathEngine(),
		asymEngine:   analysis.NewAsymptoticEngine(),
		caseAnalyzer: analysis.NewCaseAnalyzer(),
		treeBuilder:  analysis.NewTreeBuilder(),
	}
}

// Analyze runs the full pipeline over source. hint names the function to
// analyze when the source declares more than one; when hint is empty or
// unmatched, the first declared function is used. Analyze never panics past
// its own boundary and never returns a Go error: every failure is recorded
// in the returned AnalysisResult.Error.
func (o *Orchestrator) Analyze(source, hint string) result.AnalysisResult {
	start := time.Now()
	key := contentHash(source, hint)

	o.mu.Lock()
	if cached, ok := o.cache.Get(key); ok {
		o.mu.Unlock()
		return cached.(result.AnalysisResult)
	}
	o.mu.Unlock()

	res := o.run(source, hint)
	res.ElapsedMS = time.Since(start).Milliseconds()

	o.mu.Lock()
	o.cache.Add(key, res)
	o.mu.Unlock()
	return res
}

// run executes the pipeline, recovering from any panic raised by a
// malformed or unsupported AST shape the parser let through.
func (o *Orchestrator) run(source, hint string) (res result.AnalysisResult) {
	defer func() {
		if r := recover(); r != nil {
			res = sentinelResult(source, hint, fmt.Sprintf("internal error: %v", r))
		}
	}()

	program, err := parser.Parse(source)
	if err != nil {
		return sentinelResult(source, hint, err.Error())
	}

	fn := selectFunction(program, hint)
	if fn == nil {
		return sentinelResult(source, hint, "no function declared in source")
	}

	res = result.AnalysisResult{
		Filename: hint,
		FuncName: fn.Name,
		Code:     source,
		AST:      fn,
	}

	info := o.classifier.Classify(fn)
	res.IsRecursive = info.HasRecursion
	res.RecursionPattern = info.Pattern

	res.MathExpr, res.MathComplexity = o.mathEngine.Analyze(fn)

	eq, bound := o.asymEngine.Analyze(fn, info)
	res.HeurEquation = eq.Equation
	res.HeurBaseCases = eq.BaseCases
	res.HeurComplexity = bound.Complexity
	res.HeurNotation = bound.Notation
	res.HeurMethod = eq.Method
	res.HeurExplanation = bound.Explanation

	res.CanonicalComplexity = reconcile(bound, res.MathComplexity)

	res.Cases = o.caseAnalyzer.AnalyzeCases(fn, info, bound.String())

	tree, _, levelCosts := o.treeBuilder.Build(eq.Equation)
	res.Tree = tree
	res.LevelCosts = levelCosts

	return res
}

// reconcile implements the canonical-complexity arbitration of spec §9:
// prefer the asymptotic engine's tight bound when confident, else fall back
// to the math engine's closed form.
func reconcile(bound result.AsymptoticBound, mathComplexity string) string {
	if bound.Confidence >= 0.9 {
		return bound.String()
	}
	return mathComplexity
}

// selectFunction returns the function named hint, or the first declared
// function when hint is empty or does not match any declaration.
func selectFunction(program *ast.Program, hint string) *ast.Function {
	if hint != "" {
		for _, fn := range program.Functions {
			if fn.Name == hint {
				return fn
			}
		}
	}
	if len(program.Functions) == 0 {
		return nil
	}
	return program.Functions[0]
}

// sentinelResult builds the best-effort AnalysisResult spec §4.7/§7 requires
// when parsing or function selection fails: the function name, math and
// heuristic equation/complexity strings and the canonical complexity are set
// to "N/A" and the base-case map is empty; notation, method, explanation,
// recursion pattern, cases, tree and level costs stay zero-valued.
func sentinelResult(source, hint, errMsg string) result.AnalysisResult {
	return result.AnalysisResult{
		Filename:            hint,
		Code:                source,
		FuncName:            "N/A",
		MathExpr:            "N/A",
		MathComplexity:      "N/A",
		HeurEquation:        "N/A",
		HeurBaseCases:       map[string]string{},
		HeurComplexity:      "N/A",
		CanonicalComplexity: "N/A",
		Error:               errMsg,
	}
}

func contentHash(source, hint string) string {
	sum := sha256.Sum256([]byte(hint + "\x00" + source))
	return hex.EncodeToString(sum[:])
}

// Source is one named input to BatchAnalyze: Hint selects which declared
// function to analyze, mirroring Analyze's second argument.
type Source struct {
	Name string
	Code string
	Hint string
}

// BatchAnalyze analyzes every Source concurrently and returns results in
// input order. A per-item failure is recorded in that item's
// AnalysisResult.Error; BatchAnalyze itself only returns a non-nil error
// when ctx is canceled before all items complete.
//
// Grounded on surrealcode.go's scanDirectory: a bounded fan-out over
// independent units of work via errgroup.WithContext, collected through a
// buffered channel sized to the input, generalized from file paths to
// in-memory sources (and recovering result order, which scanDirectory's
// unordered merge does not need).
func (o *Orchestrator) BatchAnalyze(ctx context.Context, sources []Source) ([]result.AnalysisResult, error) {
	results := make([]result.AnalysisResult, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			res := o.Analyze(src.Code, src.Hint)
			if res.Filename == "" {
				res.Filename = src.Name
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// StoreResult persists res through the configured history.DB, a no-op when
// none was configured.
func (o *Orchestrator) StoreResult(ctx context.Context, res result.AnalysisResult) error {
	if o.db == nil {
		return nil
	}
	return o.db.StoreAnalysis(ctx, res)
}

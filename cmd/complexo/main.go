// Command complexo is the CLI front-end for the pseudocode complexity
// analyzer: it reads a source file, runs it through complexo.Orchestrator,
// and prints a pretty report, optionally persisting the result to
// SurrealDB.
//
// Grounded on the teacher's cmd/main.go: docopt usage string, --db/
// --namespace/--database/--db-user/--db-pass flags kept verbatim since the
// storage backend is unchanged, with --dir replaced by a positional file
// path (this analyzer operates on a single pseudocode source, not a Go
// package tree).
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/complexo-dev/complexo"
	"github.com/complexo-dev/complexo/history"
	"github.com/complexo-dev/complexo/result"
	"github.com/docopt/docopt-go"
)

const usage = `complexo - Pseudocode complexity analyzer.

Usage:
  complexo analyze <file> [--func=<name>] [--store] [--db=<url>] [--namespace=<ns>] [--database=<db>] [--db-user=<user>] [--db-pass=<pass>]
  complexo -h | --help
  complexo --version

Options:
  -h --help            Show this help message.
  --version            Show version.
  --func=<name>        Name of the function to analyze when the file declares more than one.
  --store              Persist the analysis result to SurrealDB.
  --db=<url>           SurrealDB connection URL [default: ws://localhost:8000/rpc].
  --namespace=<ns>     SurrealDB namespace [default: test].
  --database=<db>      SurrealDB database [default: test].
  --db-user=<user>     SurrealDB username [default: root].
  --db-pass=<pass>     SurrealDB password [default: root].
`

const version = "0.1.0"

func main() {
	opts, err := docopt.ParseArgs(usage, os.Args[1:], version)
	if err != nil {
		log.Fatalf("error parsing arguments: %v", err)
	}

	cmd, _ := opts.Bool("analyze")
	if !cmd {
		return
	}

	path, _ := opts.String("<file>")
	hint, _ := opts.String("--func")

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read %s: %v\n", path, err)
		os.Exit(1)
	}

	orch := complexo.NewOrchestrator(newHistoryDB(opts))
	res := orch.Analyze(string(source), hint)

	printReport(path, res)

	if store, _ := opts.Bool("--store"); store {
		if err := orch.StoreResult(context.Background(), res); err != nil {
			fmt.Fprintf(os.Stderr, "failed to store analysis: %v\n", err)
			os.Exit(1)
		}
	}

	if res.Error != "" {
		os.Exit(1)
	}
}

func newHistoryDB(opts docopt.Opts) history.DB {
	store, _ := opts.Bool("--store")
	if !store {
		return nil
	}

	dbURL, _ := opts.String("--db")
	namespace, _ := opts.String("--namespace")
	database, _ := opts.String("--database")
	dbUser, _ := opts.String("--db-user")
	dbPass, _ := opts.String("--db-pass")

	db, err := history.NewSurrealDB(history.Config{
		URL:       dbURL,
		Namespace: namespace,
		Database:  database,
		Username:  dbUser,
		Password:  dbPass,
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err := db.Initialize(context.Background()); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	return db
}

// printReport prints a summary of an AnalysisResult: function, recursion
// pattern, math expression and complexity, equation, bound with its
// explanation and method, canonical complexity, each case's complexity and
// scenario, the level costs and the elapsed time. The source code, AST,
// base cases, tree topology and the cases' examples and explanations are not
// printed.
func printReport(path string, res result.AnalysisResult) {
	fmt.Printf("file:       %s\n", path)
	fmt.Printf("function:   %s\n", res.FuncName)
	if res.Error != "" {
		fmt.Printf("error:      %s\n", res.Error)
		return
	}
	fmt.Printf("recursive:  %v", res.IsRecursive)
	if res.IsRecursive {
		fmt.Printf(" (%s)", res.RecursionPattern)
	}
	fmt.Println()
	fmt.Printf("math:       %s  =>  O(%s)\n", res.MathExpr, res.MathComplexity)
	fmt.Printf("equation:   %s\n", res.HeurEquation)
	fmt.Printf("complexity: %s%s(%s)  [%s, method: %s]\n",
		"", string(res.HeurNotation), res.HeurComplexity, res.HeurExplanation, res.HeurMethod)
	fmt.Printf("canonical:  %s\n", res.CanonicalComplexity)

	fmt.Println("cases:")
	for _, c := range res.Cases {
		fmt.Printf("  %-8s %-12s %s\n", c.CaseType, c.Complexity, c.Scenario)
	}

	fmt.Println("levels:")
	for _, l := range res.LevelCosts {
		fmt.Printf("  %s\n", l)
	}

	fmt.Printf("elapsed:    %dms\n", res.ElapsedMS)
}

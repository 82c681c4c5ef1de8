// Package history persists AnalysisResult records to SurrealDB, for the
// optional "analyze --store" workflow of spec §6. Persistence is entirely
// optional: the Orchestrator always returns a result whether or not a DB is
// configured.
package history

import (
	"context"

	"github.com/complexo-dev/complexo/result"
)

// DB is the storage interface the Orchestrator writes analysis history
// through, mirroring the teacher's db.DB interface (Initialize +
// StoreAnalysis) generalized from a Go call-graph report to an
// AnalysisResult.
type DB interface {
	Initialize(ctx context.Context) error
	StoreAnalysis(ctx context.Context, res result.AnalysisResult) error
}

// Schema contains the SurrealDB schema definition for the analysis history
// table, adapted from the teacher's schema.Schema: one SCHEMAFULL table
// indexed by function name, storing the canonical complexity alongside the
// recursion pattern, complexity, notation, timing and error fields so past
// runs can be queried without re-analyzing. Narrative text (explanations,
// cases) is not stored.
const Schema = `
DEFINE TABLE analyses SCHEMAFULL;
DEFINE FIELD filename ON analyses TYPE string;
DEFINE FIELD func_name ON analyses TYPE string ASSERT $value != NONE;
DEFINE FIELD is_recursive ON analyses TYPE bool;
DEFINE FIELD recursion_pattern ON analyses TYPE string;
DEFINE FIELD math_complexity ON analyses TYPE string;
DEFINE FIELD heur_complexity ON analyses TYPE string;
DEFINE FIELD heur_notation ON analyses TYPE string;
DEFINE FIELD canonical_complexity ON analyses TYPE string;
DEFINE FIELD elapsed_ms ON analyses TYPE int;
DEFINE FIELD error ON analyses TYPE option<string>;
DEFINE FIELD created_at ON analyses TYPE datetime DEFAULT time::now();
DEFINE INDEX analysis_func ON analyses FIELDS func_name;
`

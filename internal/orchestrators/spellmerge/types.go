package spellmerge

import (
	"io"

	"github.com/KirkDiggler/spellmerge/internal/entities"
)

// MergeInput defines the request for annotating a table with catalogue data
type MergeInput struct {
	Catalogue io.Reader // XML spell catalogue
	Table     io.Reader // CSV with a header row and a Spell column
	Output    io.Writer // receives the annotated CSV
}

// MergeOutput reports how well the table and catalogue lined up
type MergeOutput struct {
	Rows    int
	Matched int

	// Unmatched lists table names with no catalogue entry, in row order
	Unmatched []string

	// Unconsumed lists catalogue keys no row matched, sorted
	Unconsumed []string

	// Ambiguous lists rows where more than one candidate key matched
	Ambiguous []Ambiguity
}

// Ambiguity records a row whose name matched several catalogue keys. Key is
// the one used.
type Ambiguity struct {
	Name   string
	Key    string
	Others []string
}

// PublishInput defines the request for storing a catalogue in the repository
type PublishInput struct {
	Catalogue io.Reader
}

// PublishOutput defines the response for publishing a catalogue
type PublishOutput struct {
	Manifest *entities.Manifest
	Stored   int
	Removed  int
}

// LookupInput defines the request for resolving one table name
type LookupInput struct {
	Name string
}

// LookupOutput defines the response for resolving a table name
type LookupOutput struct {
	Key        string
	Spell      *entities.Spell
	Candidates []string
}

// VerifyInput defines the request for auditing the stored catalogue
type VerifyInput struct{}

// VerifyOutput lists what is wrong with the stored catalogue. No problems
// means the store matches its manifest.
type VerifyOutput struct {
	Manifest *entities.Manifest
	Checked  int
	Problems []Problem
}

// Problem is one defect found by Verify. Key is empty for store-wide
// problems.
type Problem struct {
	Key    string
	Reason string
}

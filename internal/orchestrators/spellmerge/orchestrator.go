// Package spellmerge implements the orchestrator that reconciles a spell
// table with the catalogue
package spellmerge

//go:generate mockgen -destination=mock/mock_service.go -package=spellmergemock github.com/KirkDiggler/spellmerge/internal/orchestrators/spellmerge Service

import (
	"context"
	"encoding/csv"
	"io"
	"log/slog"

	"github.com/KirkDiggler/spellmerge/internal/catalogue"
	"github.com/KirkDiggler/spellmerge/internal/entities"
	"github.com/KirkDiggler/spellmerge/internal/errors"
	"github.com/KirkDiggler/spellmerge/internal/names"
	"github.com/KirkDiggler/spellmerge/internal/pkg/clock"
	"github.com/KirkDiggler/spellmerge/internal/pkg/idgen"
	"github.com/KirkDiggler/spellmerge/internal/repositories/spell"
)

// SpellColumn is the table column holding the spell's display name
const SpellColumn = "Spell"

// Service defines the interface for spell reconciliation
type Service interface {
	// Merge annotates every table row with its catalogue entry
	Merge(ctx context.Context, input *MergeInput) (*MergeOutput, error)

	// Publish replaces the stored catalogue with the one read from input
	Publish(ctx context.Context, input *PublishInput) (*PublishOutput, error)

	// Lookup resolves one table name against the stored catalogue
	Lookup(ctx context.Context, input *LookupInput) (*LookupOutput, error)

	// Verify audits the stored catalogue against its manifest
	Verify(ctx context.Context, input *VerifyInput) (*VerifyOutput, error)
}

// Config holds the dependencies for the spellmerge orchestrator
type Config struct {
	// SpellRepo backs Publish, Lookup and Verify; Merge does not need it
	SpellRepo spell.Repository

	// Aliases overrides the built-in alias table when set
	Aliases *names.AliasTable

	// Clock and IDGen stamp published revisions. Both default to real
	// implementations.
	Clock clock.Clock
	IDGen idgen.Generator
}

// Validate ensures the config is usable
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	return nil
}

type orchestrator struct {
	spellRepo spell.Repository
	aliases   names.AliasTable
	clock     clock.Clock
	idGen     idgen.Generator
}

// NewOrchestrator creates a new spellmerge orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	aliases := names.DefaultAliases()
	if cfg.Aliases != nil {
		aliases = *cfg.Aliases
	}

	orch := &orchestrator{
		spellRepo: cfg.SpellRepo,
		aliases:   aliases,
		clock:     cfg.Clock,
		idGen:     cfg.IDGen,
	}
	if orch.clock == nil {
		orch.clock = clock.New()
	}
	if orch.idGen == nil {
		orch.idGen = idgen.NewRevision()
	}

	return orch, nil
}

// Merge loads the whole catalogue before reading any row, so a malformed
// catalogue fails the run before output is written
func (o *orchestrator) Merge(ctx context.Context, input *MergeInput) (*MergeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	if input.Catalogue == nil {
		vb.RequiredField("Catalogue")
	}
	if input.Table == nil {
		vb.RequiredField("Table")
	}
	if input.Output == nil {
		vb.RequiredField("Output")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	cat, err := catalogue.Load(ctx, input.Catalogue)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load catalogue")
	}

	reader := csv.NewReader(input.Table)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.SchemaViolation("table has no header row")
	}
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeSchemaViolation, "failed to read table header")
	}

	spellIdx := -1
	for i, column := range header {
		if column == SpellColumn {
			spellIdx = i
			break
		}
	}
	if spellIdx < 0 {
		return nil, errors.SchemaViolationf("table has no %s column", SpellColumn).
			WithMeta("header", header)
	}

	layout := NewLayout(header)
	writer := csv.NewWriter(input.Output)
	if err := writer.Write(layout.Columns()); err != nil {
		return nil, errors.Wrap(err, "failed to write header")
	}

	output := &MergeOutput{}
	coverage := NewCoverage()

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeSchemaViolation, "failed to read table row %d", output.Rows+1)
		}
		output.Rows++

		var name string
		if spellIdx < len(record) {
			name = record[spellIdx]
		}

		row, err := layout.NewRow(record)
		if err != nil {
			return nil, errors.Wrapf(err, "table row %d", output.Rows)
		}

		row = o.mergeRow(ctx, cat, layout, row, name, coverage, output)
		if err := writer.Write(row); err != nil {
			return nil, errors.Wrapf(err, "failed to write row %d", output.Rows)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, errors.Wrap(err, "failed to flush output")
	}

	output.Unmatched = coverage.Unmatched()
	output.Unconsumed = coverage.Unconsumed(cat.Keys())

	slog.InfoContext(ctx, "Spell table merged",
		"rows", output.Rows,
		"matched", output.Matched,
		"unmatched", len(output.Unmatched),
		"unconsumed", len(output.Unconsumed),
		"ambiguous", len(output.Ambiguous))

	return output, nil
}

// mergeRow resolves one row's name and returns the augmented row
func (o *orchestrator) mergeRow(
	ctx context.Context, cat *entities.Catalogue, layout *Layout, row Row, name string,
	coverage *Coverage, output *MergeOutput,
) Row {
	match, ok := names.Resolve(name, o.aliases, cat.Has)
	if !ok {
		coverage.Miss(name)
		return layout.Augment(row, nil)
	}

	if len(match.Others) > 0 {
		slog.WarnContext(ctx, "table name matches several catalogue keys, using the first",
			"name", name,
			"key", match.Key,
			"others", match.Others)
		output.Ambiguous = append(output.Ambiguous, Ambiguity{
			Name:   name,
			Key:    match.Key,
			Others: match.Others,
		})
	}

	found, _ := cat.Get(match.Key)
	coverage.Consume(match.Key)
	output.Matched++

	return layout.Augment(row, found)
}

// Publish loads the catalogue first so a malformed document leaves the
// stored catalogue untouched. The swap itself is a single repository write.
func (o *orchestrator) Publish(ctx context.Context, input *PublishInput) (*PublishOutput, error) {
	if o.spellRepo == nil {
		return nil, errors.FailedPrecondition("no spell repository configured")
	}
	if input == nil || input.Catalogue == nil {
		return nil, errors.InvalidArgument("catalogue is required")
	}

	cat, err := catalogue.Load(ctx, input.Catalogue)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load catalogue")
	}

	spells := make([]*entities.Spell, 0, cat.Len())
	for _, key := range cat.Keys() {
		found, _ := cat.Get(key)
		spells = append(spells, found)
	}

	manifest := &entities.Manifest{
		Revision:    o.idGen.Generate(),
		PublishedAt: o.clock.Now(),
		Spells:      cat.Len(),
	}
	replaced, err := o.spellRepo.Replace(ctx, spell.ReplaceInput{
		Spells:   spells,
		Manifest: manifest,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store revision %s", manifest.Revision)
	}

	slog.InfoContext(ctx, "Catalogue published",
		"revision", manifest.Revision,
		"stored", cat.Len(),
		"removed", replaced.Deleted)

	return &PublishOutput{
		Manifest: manifest,
		Stored:   cat.Len(),
		Removed:  replaced.Deleted,
	}, nil
}

// Lookup tries each candidate key in order and returns the first stored spell
func (o *orchestrator) Lookup(ctx context.Context, input *LookupInput) (*LookupOutput, error) {
	if o.spellRepo == nil {
		return nil, errors.FailedPrecondition("no spell repository configured")
	}
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Name", input.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	candidates := names.Candidates(input.Name, o.aliases)
	for _, key := range candidates {
		got, err := o.spellRepo.Get(ctx, spell.GetInput{Key: key})
		if errors.IsNotFound(err) {
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to look up %q", input.Name)
		}

		return &LookupOutput{
			Key:        key,
			Spell:      got.Spell,
			Candidates: candidates,
		}, nil
	}

	return nil, errors.NotFoundf("no catalogue entry matches %q", input.Name).
		WithMeta("candidates", candidates)
}

package spellmerge

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/spellmerge/internal/entities"
	"github.com/KirkDiggler/spellmerge/internal/errors"
	"github.com/KirkDiggler/spellmerge/internal/names"
	"github.com/KirkDiggler/spellmerge/internal/repositories/spell"
)

// Verify reads every stored spell and reports records that could not have
// come from a successful publish
func (o *orchestrator) Verify(ctx context.Context, _ *VerifyInput) (*VerifyOutput, error) {
	if o.spellRepo == nil {
		return nil, errors.FailedPrecondition("no spell repository configured")
	}

	manifest, err := o.spellRepo.GetManifest(ctx, spell.GetManifestInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to read manifest")
	}

	listed, err := o.spellRepo.List(ctx, spell.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stored spells")
	}

	output := &VerifyOutput{
		Manifest: manifest.Manifest,
		Checked:  len(listed.Spells),
	}

	if manifest.Manifest.Spells != len(listed.Spells) {
		output.Problems = append(output.Problems, Problem{
			Reason: fmt.Sprintf("revision %s lists %d spells, store holds %d",
				manifest.Manifest.Revision, manifest.Manifest.Spells, len(listed.Spells)),
		})
	}

	for _, s := range listed.Spells {
		output.Problems = append(output.Problems, checkStoredSpell(s)...)
	}

	if len(output.Problems) > 0 {
		slog.WarnContext(ctx, "stored catalogue has problems",
			"revision", manifest.Manifest.Revision,
			"problems", len(output.Problems))
	}

	return output, nil
}

func checkStoredSpell(s *entities.Spell) []Problem {
	var problems []Problem

	if want := names.Key(s.Name); s.Key != want {
		problems = append(problems, Problem{
			Key:    s.Key,
			Reason: fmt.Sprintf("name %q belongs under key %q", s.Name, want),
		})
	}

	fields := s.Fields()
	for _, field := range entities.RequiredFields {
		if fields[field] == "" {
			problems = append(problems, Problem{Key: s.Key, Reason: "missing " + field})
		}
	}
	if s.Prereq == "" {
		problems = append(problems, Problem{Key: s.Key, Reason: "missing " + entities.FieldPrereq})
	}
	if s.Difficulty != "" && s.Difficulty != entities.DifficultyVeryHard {
		problems = append(problems, Problem{
			Key:    s.Key,
			Reason: fmt.Sprintf("unknown difficulty %q", s.Difficulty),
		})
	}

	return problems
}

// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/spellmerge/internal/entities"
	"github.com/KirkDiggler/spellmerge/internal/errors"
	"github.com/KirkDiggler/spellmerge/internal/repositories/spell"
	spellmock "github.com/KirkDiggler/spellmerge/internal/repositories/spell/mock"
)

// ExpectSpellGet sets up a mock expectation for a stored spell
func ExpectSpellGet(ctx context.Context, mockRepo *spellmock.MockRepository, s *entities.Spell) *gomock.Call {
	return mockRepo.EXPECT().
		Get(ctx, spell.GetInput{Key: s.Key}).
		Return(&spell.GetOutput{Spell: s}, nil)
}

// ExpectSpellMissing sets up a mock expectation for keys with nothing stored
func ExpectSpellMissing(ctx context.Context, mockRepo *spellmock.MockRepository, keys ...string) {
	for _, key := range keys {
		mockRepo.EXPECT().
			Get(ctx, spell.GetInput{Key: key}).
			Return(nil, errors.NotFoundf("spell %s not found", key))
	}
}

// ExpectReplace sets up the repository write Publish makes to swap in a
// catalogue of stored spells over one that held previous spells
func ExpectReplace(ctx context.Context, mockRepo *spellmock.MockRepository, previous, stored int) *gomock.Call {
	return mockRepo.EXPECT().
		Replace(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input spell.ReplaceInput) (*spell.ReplaceOutput, error) {
			if len(input.Spells) != stored {
				return nil, errors.Internalf("expected %d spells, got %d", stored, len(input.Spells))
			}
			return &spell.ReplaceOutput{Deleted: previous}, nil
		})
}

// ExpectStored sets up the calls Verify makes against a store holding
// spells under the given manifest
func ExpectStored(
	ctx context.Context, mockRepo *spellmock.MockRepository,
	manifest *entities.Manifest, spells ...*entities.Spell,
) {
	mockRepo.EXPECT().
		GetManifest(ctx, spell.GetManifestInput{}).
		Return(&spell.GetManifestOutput{Manifest: manifest}, nil)

	mockRepo.EXPECT().
		List(ctx, spell.ListInput{}).
		Return(&spell.ListOutput{Spells: spells}, nil)
}

package catalogue

import (
	"context"
	"io"
	"log/slog"

	"github.com/KirkDiggler/spellmerge/internal/entities"
	"github.com/KirkDiggler/spellmerge/internal/errors"
	"github.com/KirkDiggler/spellmerge/internal/xmltree"
)

// Load reads every spell element under the document root. The first schema
// violation aborts the load.
func Load(ctx context.Context, r io.Reader) (*entities.Catalogue, error) {
	root, err := xmltree.Parse(r)
	if err != nil {
		return nil, err
	}

	cat := entities.NewCatalogue()
	for i := range root.Children {
		spell, err := Extract(&root.Children[i])
		if err != nil {
			return nil, errors.Wrapf(err, "catalogue entry %d", i+1)
		}

		if replaced := cat.Put(spell); replaced {
			slog.WarnContext(ctx, "duplicate catalogue key, keeping the later spell",
				"key", spell.Key,
				"name", spell.Name)
		}
	}

	slog.DebugContext(ctx, "catalogue loaded",
		"root", root.Tag(),
		"spells", cat.Len())

	return cat, nil
}

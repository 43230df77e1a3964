package compose

import (
	"context"

	"github.com/arthur-debert/flatlint/pkg/errors"
	"github.com/arthur-debert/flatlint/pkg/options"
	"github.com/arthur-debert/flatlint/pkg/types"
)

// Override recomposes a tagged config with patch deep-merged over its
// options. Mappings merge recursively, arrays are replaced and an explicit
// nil clears a setting. The result is tagged with the merged options, so
// overrides can be chained.
func (c *Composer) Override(ctx context.Context, base Config, patch options.Input, extra ...types.RuleFragment) (Config, error) {
	if !base.Tagged() {
		return Config{}, errors.New(errors.ErrMissingTag, "only tagged configs can be overridden")
	}

	merged := options.Merge(base.Options, patch)
	c.logger.Debug().Interface("options", merged).Msg("Merged override options")

	cfg, err := c.Compose(ctx, merged, extra...)
	if err != nil {
		return Config{}, err
	}
	return Tag(cfg, merged), nil
}

package inspect

import (
	"context"
	"fmt"
	"io"

	"github.com/omgnotthatguy/errtree/pkg/errtree"
	"github.com/omgnotthatguy/errtree/pkg/log"
)

// Tree collects every error type reachable from the pattern and writes the
// rendered tree to w. A target without any error types still renders the
// root line; only a root that cannot be loaded is an error
func Tree(ctx context.Context, w io.Writer, pattern string, render []errtree.RenderOption, opts ...InspectOption) error {
	registry, err := Collect(ctx, pattern, opts...)
	if err != nil {
		return err
	}

	if registry.Len() == 0 {
		log.Info().Str("pattern", pattern).Msg("no error types found")
	}

	for _, line := range errtree.Render(registry, render...) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

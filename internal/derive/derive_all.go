package derive

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"vsmsummary-generator/internal/schema"
	"vsmsummary-generator/internal/vsmconfig"
)

// Result is the derivation output for one schema.
type Result struct {
	Summary *VsmSummary
	Config  *vsmconfig.Config
}

// DeriveAll derives and produces the vsmsummary config of every schema
// concurrently. Results are in input order. The first producer error cancels
// the remaining work and is returned.
func DeriveAll(ctx context.Context, schemas []*schema.Schema, opts ...vsmconfig.Option) ([]Result, error) {
	results := make([]Result, len(schemas))

	g, ctx := errgroup.WithContext(ctx)

	for i, s := range schemas {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			summary := NewVsmSummary(s)

			cfg, err := vsmconfig.Produce(summary, opts...)
			if err != nil {
				return fmt.Errorf("schema %s: %w", s.Name, err)
			}

			results[i] = Result{Summary: summary, Config: cfg}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/cronut/pkg/observability"
	"github.com/matzehuels/cronut/pkg/render"
	"github.com/matzehuels/cronut/pkg/render/donut"
)

// Draw validates opts and builds a document holding one chart.
func Draw(ctx context.Context, opts Options) (*render.Document, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnDrawStart(ctx, opts.Kind, len(opts.Values)+len(opts.Inner))
	start := time.Now()

	doc := render.NewDocument(opts.Width, opts.Height)
	p := opts.Provider
	if p == nil {
		p = defaultProvider(opts)
	}
	chartOpts := donut.Options{
		Colors:      opts.Colors,
		RadiusRatio: opts.RadiusRatio,
		Duration:    opts.Duration(),
		Ease:        render.Eases[opts.Ease],
	}

	var err error
	if opts.IsDouble() {
		_, err = donut.Double(p, doc, opts.Values, opts.Inner, chartOpts)
	} else {
		_, err = donut.Single(p, doc, opts.Values, chartOpts)
	}
	hooks.OnDrawComplete(ctx, opts.Kind, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	opts.Logger.Debug("drew chart", "kind", opts.Kind, "width", opts.Width, "height", opts.Height)
	return doc, nil
}

// defaultProvider names the chart after the request hash: identical
// requests render identical bytes.
func defaultProvider(opts Options) render.Provider {
	id := fmt.Sprintf("cronut-%s", opts.Hash()[:12])
	return render.NewProvider(render.WithIDs(func() string { return id }))
}

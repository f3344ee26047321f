// Package ioenrich implements gnsyn.Runner. It reads a food names table,
// adds NCBI synonyms to every row and writes the result.
package ioenrich

import (
	"context"
	"log/slog"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnsyn/internal/iotable"
	"github.com/gnames/gnsyn/pkg/config"
	"github.com/gnames/gnsyn/pkg/enrich"
	"github.com/gnames/gnsyn/pkg/gnsyn"
	"github.com/gnames/gnsyn/pkg/names"
	"github.com/gnames/gnsyn/pkg/table"
	"github.com/gnames/gnsyn/pkg/taxonomy"
)

// callCounter is implemented by remote clients that count their requests.
type callCounter interface {
	Calls() (searches, fetches int)
}

type runner struct {
	cfg      *config.Config
	searcher taxonomy.Searcher
	enricher *enrich.Enricher
}

// New creates a Runner that uses s and f for remote lookups.
func New(
	cfg *config.Config,
	s taxonomy.Searcher,
	f taxonomy.Fetcher,
) gnsyn.Runner {
	var opts []enrich.Option
	if cfg.Enrich.WithCanonical {
		opts = append(opts, enrich.OptCanonicalizer(names.NewCanonicalizer()))
	}
	return &runner{
		cfg:      cfg,
		searcher: s,
		enricher: enrich.New(s, f, opts...),
	}
}

// Run reads, enriches and writes the table. Only problems with the input
// or output files and cancellation are returned as errors.
func (r *runner) Run(ctx context.Context) error {
	startTime := time.Now()

	tbl, err := iotable.Read(r.cfg.Input)
	if err != nil {
		return err
	}
	tbl.Limit(r.cfg.Limit)
	total := len(tbl.Rows)

	slog.Info("Loaded rows", "count", total, "input", r.cfg.Input)
	gn.Info("Loaded <em>%s</em> rows from <em>%s</em>",
		humanize.Comma(int64(total)), r.cfg.Input)

	r.enricher.Prepare(tbl.Rows)
	keys := r.enricher.Stats().Keys
	slog.Info("Prepared unique name keys", "count", keys)
	gn.Info("Prepared <em>%s</em> unique name keys",
		humanize.Comma(int64(keys)))

	rows, err := r.process(ctx, tbl)
	if err != nil {
		return err
	}

	output := r.cfg.OutputPath()
	if err = iotable.Write(output, tbl, rows); err != nil {
		return err
	}
	slog.Info("Wrote results", "output", output)
	gn.Info("Wrote results to <em>%s</em>", output)

	r.summary(total, time.Since(startTime))
	return nil
}

func (r *runner) process(
	ctx context.Context,
	tbl *table.Table,
) ([]table.Row, error) {
	total := len(tbl.Rows)
	every := r.cfg.Enrich.ProgressEvery
	res := make([]table.Row, 0, total)

	bar := pb.Full.Start(total)
	bar.Set("prefix", "Enriching rows: ")
	bar.Set(pb.CleanOnFinish, true)
	defer bar.Finish()

	for i, row := range tbl.Rows {
		if err := ctx.Err(); err != nil {
			return nil, CancelledError(i+1, total, err)
		}

		num := i + 1
		if num%every == 0 || num == total {
			slog.Info("Processing row",
				"row", humanize.Comma(int64(num)),
				"total", humanize.Comma(int64(total)),
			)
		}

		res = append(res, r.enricher.EnrichRow(ctx, tbl, i, row))
		bar.Increment()
	}
	return res, nil
}

func (r *runner) summary(total int, dur time.Duration) {
	st := r.enricher.Stats()
	attrs := []any{
		"rows", total,
		"keys", st.Keys,
		"resolved_keys", st.ResolvedKeys,
		"queries", st.Queries,
		"taxa", st.IDs,
		"duration", gnfmt.TimeString(dur.Seconds()),
	}
	if cc, ok := r.searcher.(callCounter); ok {
		searches, fetches := cc.Calls()
		attrs = append(attrs, "esearch_calls", searches, "efetch_calls", fetches)
	}
	slog.Info("Enrichment finished", attrs...)

	gn.Info(
		"<em>Resolved %s of %s name keys to %s taxa in %s</em>",
		humanize.Comma(int64(st.ResolvedKeys)),
		humanize.Comma(int64(st.Keys)),
		humanize.Comma(int64(st.IDs)),
		gnfmt.TimeString(dur.Seconds()),
	)
}

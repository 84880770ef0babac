// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tamzrod/signage-configgen/internal/config"
	"github.com/tamzrod/signage-configgen/internal/configdata"
	"github.com/tamzrod/signage-configgen/internal/generator"
	"github.com/tamzrod/signage-configgen/internal/index"
	"github.com/tamzrod/signage-configgen/internal/player"
	"github.com/tamzrod/signage-configgen/internal/render"
	"github.com/tamzrod/signage-configgen/internal/report"
	"github.com/tamzrod/signage-configgen/internal/writer"
)

// modelKey is the ConfigData key consulted when the job entry has no model.
const modelKey = "model"

// Run generates every player of cfg once, then writes the index page and
// the report. cfg must already be expanded, validated and normalized.
//
// A failing player is recorded and logged; the run goes on with the next
// one. The returned error names every failed player.
func Run(ctx context.Context, cfg *config.Config, log zerolog.Logger) (report.Snapshot, error) {
	return run(ctx, cfg, log, writer.FileSink{}, time.Now())
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger, sink writer.Sink, now time.Time) (report.Snapshot, error) {
	g := cfg.Generator
	snap := report.New(now)

	log = log.With().Str("run", snap.RunID).Logger()
	log.Info().Int("players", len(g.Players)).Str("output_dir", g.OutputDir).Msg("run started")

	for _, p := range g.Players {
		if err := ctx.Err(); err != nil {
			log.Warn().Err(err).Msg("run cancelled")
			return snap, err
		}

		e := generate(p, g.OutputDir, sink)
		snap.Add(e)

		ev := log.Info()
		if e.Health == report.HealthError {
			ev = log.Error().Str("error", e.Error)
		}
		ev.Str("player", e.PlayerID).
			Str("model", e.Model).
			Str("output", e.Output).
			Strs("sections", e.Sections).
			Msg("player generated")
	}

	var errs []string
	for _, e := range snap.Failed() {
		errs = append(errs, fmt.Sprintf("player %q: %s", e.PlayerID, e.Error))
	}

	if g.Index.Enabled {
		if err := writeIndex(g, snap, sink, now); err != nil {
			log.Error().Err(err).Msg("index write failed")
			errs = append(errs, err.Error())
		}
	}

	rw, enabled, err := writer.NewReportWriter(g.Report, g.OutputDir, sink)
	if err != nil {
		errs = append(errs, err.Error())
	} else if enabled {
		if err := rw.WriteReport(snap); err != nil {
			log.Error().Err(err).Msg("report write failed")
			errs = append(errs, err.Error())
		}
	}

	ok, failed := snap.Counts()
	log.Info().Int("ok", ok).Int("failed", failed).Msg("run finished")

	if len(errs) > 0 {
		return snap, errors.New(strings.Join(errs, " | "))
	}
	return snap, nil
}

// generate runs one player end to end and reports the outcome.
func generate(p config.PlayerConfig, outputDir string, sink writer.Sink) report.Entry {
	e := report.Entry{PlayerID: p.ID, Model: p.Model, Health: report.HealthError}

	fail := func(err error) report.Entry {
		e.Error = err.Error()
		return e
	}

	data, err := configdata.LoadFile(p.Data)
	if err != nil {
		return fail(err)
	}

	model, err := resolveModel(p, data)
	if err != nil {
		return fail(err)
	}
	e.Model = model.String()
	e.Stages = generator.StageNames(model)

	tpl, err := generator.Generate(model, data)
	if err != nil {
		return fail(err)
	}
	e.Sections = tpl.SectionNames()

	doc, err := render.Render(tpl)
	if err != nil {
		return fail(err)
	}

	plan, err := writer.BuildPlan(p, outputDir, tpl.File)
	if err != nil {
		return fail(err)
	}
	if err := writer.New(plan, sink).Write(doc); err != nil {
		return fail(err)
	}

	e.Output = plan.Rel
	e.Health = report.HealthOK
	return e
}

// resolveModel prefers the job entry, then the data file's model key.
func resolveModel(p config.PlayerConfig, data configdata.Data) (player.Model, error) {
	name := p.Model
	if name == "" && data.Has(modelKey) {
		s, err := data.String(modelKey)
		if err != nil {
			return player.Unknown, err
		}
		name = s
	}
	if name == "" {
		return player.Unknown, fmt.Errorf("pipeline: player %q: no model in job or data", p.ID)
	}
	return player.Parse(name)
}

func writeIndex(g config.GeneratorConfig, snap report.Snapshot, sink writer.Sink, now time.Time) error {
	rows := make([]index.Row, 0, len(snap.Players))
	for _, e := range snap.Players {
		rows = append(rows, index.Row{
			Name:     e.PlayerID,
			Model:    e.Model,
			Status:   e.Health.String(),
			Link:     e.Output,
			Error:    e.Error,
			Sections: e.Sections,
		})
	}

	page, err := index.NewBuilder().
		AddReplacer(index.Header{Title: g.Index.Title}).
		AddReplacer(index.PlayerTable{Rows: rows}).
		AddReplacer(index.Footer{RunID: snap.RunID, GeneratedAt: now}).
		BuildIndex()
	if err != nil {
		return err
	}

	plan, err := writer.BuildFilePlan("index", g.OutputDir, g.Index.File)
	if err != nil {
		return err
	}
	return writer.New(plan, sink).Write([]byte(page))
}

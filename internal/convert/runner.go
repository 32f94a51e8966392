package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/regression-io/claude-config-plugins/internal/config"
	"github.com/regression-io/claude-config-plugins/internal/consts"
	"github.com/regression-io/claude-config-plugins/internal/pkg/logs"
)

type (
	// Summary is the outcome of a full run over the mapping table.
	Summary struct {
		Converted []*Result
		Missing   []string
		Failed    []*Failure
	}

	Failure struct {
		Template string
		Plugin   string
		Err      error
	}
)

func (f *Failure) Error() string {
	return fmt.Sprintf("convert %s -> %s: %v", f.Template, f.Plugin, f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Runner drives a conversion over every configured mapping.
type Runner struct {
	cfg  *config.Config
	out  *Reporter
	conv *Converter
}

func NewRunner(cfg *config.Config, w io.Writer) *Runner {
	out := NewReporter(w)
	return &Runner{
		cfg:  cfg,
		out:  out,
		conv: NewConverter(cfg, out),
	}
}

// Run converts the mappings in declaration order. Missing templates are
// skipped with a warning. Any other failure stops the run unless KeepGoing
// is set, in which case failures are collected and joined into the
// returned error after every mapping has been attempted.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	summary := &Summary{}
	r.out.Start()

	if err := os.MkdirAll(r.cfg.PluginsDir, consts.DirMode); err != nil {
		return summary, fmt.Errorf("create plugins dir: %w", err)
	}
	logs.CtxInfo(ctx, "converting %d templates from %s into %s",
		len(r.cfg.Mappings), r.cfg.TemplatesDir, r.cfg.PluginsDir)

	for _, m := range r.cfg.Mappings {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		templatePath := filepath.Join(r.cfg.TemplatesDir, filepath.FromSlash(m.Template))
		ok, err := dirExists(templatePath)
		if err == nil && !ok {
			r.out.TemplateNotFound(m.Template)
			logs.CtxWarn(ctx, "template %s not found at %s", m.Template, templatePath)
			summary.Missing = append(summary.Missing, m.Template)
			continue
		}

		var res *Result
		if err == nil {
			r.out.Converting(m.Template, m.Plugin)
			res, err = r.conv.ConvertTemplate(ctx, templatePath, m.Plugin)
		}
		if err != nil {
			failure := &Failure{Template: m.Template, Plugin: m.Plugin, Err: err}
			if !r.cfg.KeepGoing {
				return summary, failure
			}
			r.out.Failed(m.Plugin, err)
			logs.CtxError(ctx, "%v", failure)
			summary.Failed = append(summary.Failed, failure)
			continue
		}
		summary.Converted = append(summary.Converted, res)
	}

	r.out.Complete(summary)

	if len(summary.Failed) > 0 {
		errs := make([]error, 0, len(summary.Failed))
		for _, f := range summary.Failed {
			errs = append(errs, f)
		}
		return summary, errors.Join(errs...)
	}
	return summary, nil
}

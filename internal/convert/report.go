package convert

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	cSuccess = color.New(color.FgGreen)
	cWarn    = color.New(color.FgYellow)
	cError   = color.New(color.FgRed)
	cInfo    = color.New(color.FgHiBlack)
	cTitle   = color.New(color.FgCyan, color.Bold)
)

// Reporter prints the human-readable progress of a conversion run.
type Reporter struct {
	w io.Writer
}

func NewReporter(w io.Writer) *Reporter {
	if w == nil {
		w = io.Discard
	}
	return &Reporter{w: w}
}

func (r *Reporter) Start() {
	cTitle.Fprintln(r.w, "Converting templates to plugins...")
	fmt.Fprintln(r.w)
}

func (r *Reporter) Converting(template, plugin string) {
	fmt.Fprintf(r.w, "\nConverting: %s → %s\n", template, plugin)
}

func (r *Reporter) TemplateNotFound(template string) {
	cWarn.Fprintf(r.w, "⚠ Template not found: %s\n", template)
}

func (r *Reporter) RulesConverted(n int) {
	cSuccess.Fprintf(r.w, "  ✓ Converted %d rules to skills\n", n)
}

func (r *Reporter) CommandsCopied(n int) {
	cSuccess.Fprintf(r.w, "  ✓ Copied %d commands\n", n)
}

func (r *Reporter) Includes(names []string) {
	cInfo.Fprintf(r.w, "  ℹ Includes: %s\n", strings.Join(names, ", "))
}

func (r *Reporter) Included(inc *IncludeResult) {
	if len(inc.Skipped) == 0 {
		cSuccess.Fprintf(r.w, "    ✓ Included %d skills from %s\n", inc.Total(), inc.Include)
		return
	}
	cSuccess.Fprintf(r.w, "    ✓ Included %d skills from %s (%d already present)\n",
		inc.Total(), inc.Include, len(inc.Skipped))
}

func (r *Reporter) IncludeNotFound(include string) {
	cWarn.Fprintf(r.w, "    ⚠ Include not found: %s\n", include)
}

func (r *Reporter) Created(plugin string) {
	cSuccess.Fprintf(r.w, "✓ Created plugin: %s\n", plugin)
}

func (r *Reporter) Failed(plugin string, err error) {
	cError.Fprintf(r.w, "✗ Failed: %s: %v\n", plugin, err)
}

func (r *Reporter) Complete(s *Summary) {
	fmt.Fprintln(r.w)
	cSuccess.Fprintln(r.w, "✅ Conversion complete!")
	fmt.Fprintf(r.w, "%d converted, %d missing, %d failed\n",
		len(s.Converted), len(s.Missing), len(s.Failed))
}

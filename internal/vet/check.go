package vet

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/checker"
	"golang.org/x/tools/go/packages"

	"martianoff/freezie/freezeerr"
)

// loadMode is what the checker needs: syntax and types for every package,
// dependencies included.
const loadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedCompiledGoFiles |
	packages.NeedImports |
	packages.NeedDeps |
	packages.NeedTypes |
	packages.NeedTypesSizes |
	packages.NeedSyntax |
	packages.NeedTypesInfo

// Check loads the packages matching patterns and runs frozenwrite on them.
// It returns nil when nothing is found, a *freezeerr.MultiError of
// *freezeerr.MutationError for findings, and a *freezeerr.LoadError when the
// packages cannot be loaded.
func Check(ctx context.Context, cfg *Config, patterns ...string) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	pcfg := &packages.Config{
		Context:    ctx,
		Mode:       loadMode,
		Dir:        cfg.Dir,
		Tests:      cfg.Tests,
		BuildFlags: cfg.buildFlags(),
		Overlay:    cfg.Overlay,
	}
	pkgs, err := packages.Load(pcfg, patterns...)
	if err != nil {
		return freezeerr.NewLoadError("loading "+strings.Join(patterns, " "), err)
	}
	if len(pkgs) == 0 {
		return freezeerr.NewLoadError("no packages matched "+strings.Join(patterns, " "), nil)
	}

	var loadErrs []error
	packages.Visit(pkgs, nil, func(p *packages.Package) {
		for _, e := range p.Errors {
			loadErrs = append(loadErrs, e)
		}
	})
	if len(loadErrs) > 0 {
		return freezeerr.NewLoadError(fmt.Sprintf("%d package error(s)", len(loadErrs)), errors.Join(loadErrs...))
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	graph, err := checker.Analyze([]*analysis.Analyzer{Analyzer}, pkgs, &checker.Options{})
	if err != nil {
		return freezeerr.NewLoadError("running "+Analyzer.Name, err)
	}

	return collect(graph)
}

// collect turns root diagnostics into MutationErrors. Test variants of a
// package report the same position twice; only the first is kept.
func collect(graph *checker.Graph) error {
	var findings []*freezeerr.MutationError
	seen := make(map[string]bool)
	for _, act := range graph.Roots {
		if act.Analyzer != Analyzer {
			continue
		}
		if act.Err != nil {
			return freezeerr.NewLoadError("analyzing "+act.Package.PkgPath, act.Err)
		}
		for _, d := range act.Diagnostics {
			pos := act.Package.Fset.Position(d.Pos)
			key := pos.String() + "\x00" + d.Message
			if seen[key] {
				continue
			}
			seen[key] = true
			findings = append(findings, freezeerr.NewMutationErrorInFile(pos.Filename, pos.Line, pos.Column, d.Message))
		}
	}
	if len(findings) == 0 {
		return nil
	}

	sort.Slice(findings, func(i, j int) bool {
		a, b := findings[i], findings[j]
		if a.FilePath != b.FilePath {
			return a.FilePath < b.FilePath
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})

	multi := &freezeerr.MultiError{}
	for _, f := range findings {
		multi.Errors = append(multi.Errors, f)
	}
	return multi
}

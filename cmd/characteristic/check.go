package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dball/characteristic/internal/attrs"
	"github.com/dball/characteristic/internal/cli/config"
	"github.com/dball/characteristic/internal/cli/ui"
	"github.com/dball/characteristic/internal/decl"
)

func newCheckCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Compose declared kinds and check their records",
		Long: `Compose the record kinds declared in each file, construct its records, and
list each kind's records in attribute order. Records equal to an earlier record
of the same kind are reported as duplicates.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return check(cmd.OutOrStdout(), args, a.config, a.logger)
		},
	}
}

// check reports on each declarations file, returning an error if any file
// could not be composed.
func check(w io.Writer, paths []string, cfg *config.Config, logger *zap.Logger) error {
	p := ui.NewPrinter(w, &ui.PrinterOptions{NoColor: !cfg.Color})
	failed := 0
	for _, path := range paths {
		p.Heading("%s", path)
		duplicates, err := checkFile(p, path, cfg, logger)
		if err != nil {
			failed++
			logger.Error("check failed", zap.String("path", path), zap.Error(err))
			p.Item(ui.StatusError, "%v", err)
			continue
		}
		if duplicates > 0 {
			p.Summary(ui.StatusWarning, "%d duplicate records", duplicates)
		} else {
			p.Summary(ui.StatusOK, "ok")
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(paths))
	}
	return nil
}

func checkFile(p *ui.Printer, path string, cfg *config.Config, logger *zap.Logger) (duplicates int, err error) {
	file, err := decl.Load(path)
	if err != nil {
		return
	}
	catalog, err := decl.Compose(file, decl.Config{Degree: cfg.Index.Degree, Logger: logger})
	if err != nil {
		return
	}
	records, err := catalog.Build(file.Records)
	if err != nil {
		return
	}
	byKind := make(map[*decl.Kind][]*decl.Record, len(catalog.Kinds()))
	for _, r := range records {
		byKind[r.Kind()] = append(byKind[r.Kind()], r)
	}
	for _, kind := range catalog.Kinds() {
		set := kind.NewSortedSet()
		var dups []*decl.Record
		for _, r := range byKind[kind] {
			var extant bool
			extant, err = set.Add(r)
			if err != nil {
				return
			}
			if extant {
				dups = append(dups, r)
			}
		}
		logger.Debug("checked kind", zap.String("kind", kind.Name()), zap.Int("records", set.Len()), zap.Int("duplicates", len(dups)))
		p.Heading("%s(%s): %d records", kind.Name(), joinNames(kind.Attributes()), set.Len())
		for _, r := range set.Records() {
			p.Item(ui.StatusOK, "%s", r.Repr())
		}
		for _, r := range dups {
			p.Item(ui.StatusWarning, "duplicate %s", r.Repr())
			hash, herr := r.Hash()
			if herr != nil {
				p.Detail("unhashable: %v", herr)
			} else {
				p.Detail("hash %016x", hash)
			}
		}
		duplicates += len(dups)
	}
	return
}

func joinNames(specs []attrs.Spec) string {
	return strings.Join(attrs.Names(specs), ", ")
}

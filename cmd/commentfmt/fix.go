package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"commentfmt/internal/diag"
	"commentfmt/internal/driver"
	"commentfmt/internal/fix"
	"commentfmt/internal/source"
)

var fixCmd = &cobra.Command{
	Use:   "fix [flags] <file|directory>",
	Short: "Apply available comment style fixes",
	Long:  "Run the style check, surface available rewrites, and apply them according to the chosen strategy.",
	Args:  cobra.ExactArgs(1),
	RunE:  runFix,
}

func init() {
	registerStyleFlags(fixCmd)
	fixCmd.Flags().Bool("all", false, "apply all always-safe fixes")
	fixCmd.Flags().Bool("once", false, "apply the first available fix (default)")
	fixCmd.Flags().String("id", "", "apply fix with a specific identifier")
	fixCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
}

func runFix(cmd *cobra.Command, args []string) error {
	targetPath := args[0]

	applyAll, err := cmd.Flags().GetBool("all")
	if err != nil {
		return err
	}
	applyOnceFlag, err := cmd.Flags().GetBool("once")
	if err != nil {
		return err
	}
	targetID, err := cmd.Flags().GetString("id")
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}

	if targetID != "" && (applyAll || applyOnceFlag) {
		return fmt.Errorf("--id cannot be combined with --all or --once")
	}
	if applyAll && applyOnceFlag {
		return fmt.Errorf("--all and --once are mutually exclusive")
	}

	mode := fix.ApplyModeOnce
	if targetID != "" {
		mode = fix.ApplyModeID
	} else if applyAll {
		mode = fix.ApplyModeAll
	}
	applyOpts := fix.ApplyOptions{
		Mode:     mode,
		TargetID: targetID,
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}

	resolved, err := resolveOptions(cmd, configStart(targetPath))
	if err != nil {
		return err
	}

	info, err := os.Stat(targetPath)
	if err != nil {
		return fmt.Errorf("fix: %w", err)
	}

	// id уникален только внутри одного файла
	if info.IsDir() && targetID != "" {
		return fmt.Errorf("fix: --id can only be used with a single file")
	}

	var (
		fs          *source.FileSet
		diagnostics []diag.Diagnostic
	)
	if !info.IsDir() {
		fs = source.NewFileSet()
		result := driver.CheckFile(fs, targetPath, resolved.Options, maxDiagnostics)
		diagnostics = result.Bag.Items()
	} else {
		var results []driver.Result
		fs, results, err = driver.CheckPaths(cmd.Context(), []string{targetPath}, driver.WalkOptions{
			Options:        resolved.Options,
			Extensions:     resolved.Extensions,
			MaxDiagnostics: maxDiagnostics,
			Jobs:           jobs,
		})
		if err != nil {
			return fmt.Errorf("fix: check failed: %w", err)
		}
		for _, r := range results {
			diagnostics = append(diagnostics, r.Bag.Items()...)
		}
	}

	res, applyErr := fix.Apply(fs, diagnostics, applyOpts)
	return handleApplyResult(res, applyErr)
}

func handleApplyResult(res *fix.ApplyResult, applyErr error) error {
	if res == nil {
		return applyErr
	}

	if len(res.Applied) > 0 {
		fmt.Fprintf(os.Stdout, "Applied %d fix(es):\n", len(res.Applied))
		for _, item := range res.Applied {
			location := item.PrimaryPath
			if location == "" {
				location = "(unknown location)"
			}
			fmt.Fprintf(os.Stdout, "  %s [%s] at %s (%d edits, %s)\n",
				item.Title, item.ID, location, item.EditCount, item.Applicability.String())
		}
	}

	if len(res.FileChanges) > 0 {
		fmt.Fprintln(os.Stdout, "Updated files:")
		for _, change := range res.FileChanges {
			fmt.Fprintf(os.Stdout, "  %s (%d edits)\n", change.Path, change.EditCount)
		}
	}

	if len(res.Skipped) > 0 {
		fmt.Fprintln(os.Stdout, "Skipped fixes:")
		for _, skip := range res.Skipped {
			id := skip.ID
			if id == "" {
				id = "(unnamed)"
			}
			if skip.Title != "" {
				fmt.Fprintf(os.Stdout, "  %s [%s]: %s\n", skip.Title, id, skip.Reason)
			} else {
				fmt.Fprintf(os.Stdout, "  [%s]: %s\n", id, skip.Reason)
			}
		}
	}

	if applyErr != nil {
		if errors.Is(applyErr, fix.ErrNoFixes) && len(res.Applied) == 0 {
			fmt.Fprintln(os.Stdout, "No applicable fixes found.")
			return nil
		}
		return applyErr
	}

	if len(res.Applied) == 0 {
		fmt.Fprintln(os.Stdout, "No fixes applied.")
	}
	return nil
}

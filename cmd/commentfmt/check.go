package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"commentfmt/internal/diagfmt"
	"commentfmt/internal/driver"
	"commentfmt/internal/source"
	"commentfmt/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [paths...]",
	Short: "Check comment style in files or directories",
	Long:  `Check scans files for multi-line comment groups and reports every place where the group does not match the configured target style`,
	RunE:  runCheck,
}

func init() {
	registerStyleFlags(checkCmd)
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json|sarif)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	checkCmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
	checkCmd.Flags().Bool("suggest", false, "include fix suggestions in output")
	checkCmd.Flags().Bool("progress", false, "show a live progress view for directory runs")
	checkCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
}

func runCheck(cmd *cobra.Command, args []string) error {
	paths := args
	if len(paths) == 0 {
		paths = []string{"."}
	}

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	suggest, err := cmd.Flags().GetBool("suggest")
	if err != nil {
		return fmt.Errorf("failed to get suggest flag: %w", err)
	}
	showProgress, err := cmd.Flags().GetBool("progress")
	if err != nil {
		return fmt.Errorf("failed to get progress flag: %w", err)
	}
	fullPath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return fmt.Errorf("failed to get fullpath flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	resolved, err := resolveOptions(cmd, configStart(paths[0]))
	if err != nil {
		return err
	}

	walkOpts := driver.WalkOptions{
		Options:        resolved.Options,
		Extensions:     resolved.Extensions,
		MaxDiagnostics: maxDiagnostics,
		Jobs:           jobs,
	}

	var (
		fs      *source.FileSet
		results []driver.Result
	)
	if showProgress && isTerminal(os.Stderr) && format == "pretty" {
		files, expandErr := driver.ExpandPaths(paths, resolved.Extensions)
		if expandErr != nil {
			return expandErr
		}
		events := make(chan driver.Event, len(files))
		walkOpts.Progress = func(ev driver.Event) { events <- ev }

		var runErr error
		go func() {
			fs, results, runErr = driver.CheckPaths(cmd.Context(), paths, walkOpts)
			close(events)
		}()
		if uiErr := ui.RunProgress("checking comment style", files, events); uiErr != nil {
			return uiErr
		}
		err = runErr
	} else {
		fs, results, err = driver.CheckPaths(cmd.Context(), paths, walkOpts)
	}
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return err
	}
	useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))
	pathMode := diagfmt.PathModeAuto
	if fullPath {
		pathMode = diagfmt.PathModeAbsolute
	}

	total := 0
	for _, r := range results {
		total += r.Bag.Len()
	}

	switch format {
	case "pretty":
		prettyOpts := diagfmt.PrettyOpts{
			Color:     useColor,
			PathMode:  pathMode,
			ShowNotes: withNotes,
			ShowFixes: suggest,
		}
		for _, r := range results {
			diagfmt.Pretty(os.Stdout, r.Bag, fs, prettyOpts)
		}
		if total == 0 && !quiet {
			fmt.Fprintln(os.Stdout, "No comment style issues found.")
		}
	case "json":
		jsonOpts := diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         pathMode,
			IncludeNotes:     withNotes,
			IncludeFixes:     suggest,
			IncludePreviews:  suggest,
		}
		output := make(map[string]diagfmt.DiagnosticsOutput, len(results))
		for _, r := range results {
			output[r.Path] = diagfmt.BuildDiagnosticsOutput(r.Bag, fs, jsonOpts)
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(output); err != nil {
			return fmt.Errorf("failed to encode diagnostics output: %w", err)
		}
	case "sarif":
		meta := diagfmt.SarifRunMeta{
			ToolName:    "commentfmt",
			ToolVersion: "0.1.0",
		}
		merged := driver.MergeBags(results, maxDiagnostics*max(len(results), 1))
		if err := diagfmt.Sarif(os.Stdout, merged, fs, meta); err != nil {
			return fmt.Errorf("failed to format SARIF output: %w", err)
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if total > 0 {
		// Диагностика уже напечатана, usage здесь не нужен.
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("")
	}
	return nil
}

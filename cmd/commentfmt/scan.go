package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"commentfmt/internal/comment"
	"commentfmt/internal/diagfmt"
	"commentfmt/internal/driver"
	"commentfmt/internal/source"
)

var scanCmd = &cobra.Command{
	Use:   "scan [flags] <file>",
	Short: "Dump comment tokens or groups from a source file",
	Long:  `Scan tokenizes a source file and dumps the comment tokens, or the filtered comment groups with their classified form and content lines`,
	Args:  cobra.ExactArgs(1),
	RunE:  runScan,
}

func init() {
	registerStyleFlags(scanCmd)
	scanCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	scanCmd.Flags().Bool("groups", false, "dump comment groups instead of raw tokens")
}

func runScan(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	dumpGroups, err := cmd.Flags().GetBool("groups")
	if err != nil {
		return fmt.Errorf("failed to get groups flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	resolved, err := resolveOptions(cmd, configStart(filePath))
	if err != nil {
		return err
	}

	fs := source.NewFileSet()
	result := driver.CheckFile(fs, filePath, resolved.Options, maxDiagnostics)
	if result.Bag.HasErrors() {
		printScanDiagnostics(cmd, result, fs)
		return fmt.Errorf("scan failed")
	}

	// Диагностика идёт в stderr, дамп в stdout.
	if result.Bag.Len() > 0 {
		printScanDiagnostics(cmd, result, fs)
	}

	if dumpGroups {
		file := fs.Get(result.FileID)
		groups := comment.BuildGroups(file, result.Tokens, resolved.Options.IgnorePattern)
		switch format {
		case "pretty":
			return diagfmt.FormatGroupsPretty(os.Stdout, groups, fs)
		case "json":
			return diagfmt.FormatGroupsJSON(os.Stdout, groups)
		default:
			return fmt.Errorf("unknown format: %s", format)
		}
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, fs)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func printScanDiagnostics(cmd *cobra.Command, result driver.Result, fs *source.FileSet) {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stderr))
	diagfmt.Pretty(os.Stderr, result.Bag, fs, diagfmt.PrettyOpts{Color: useColor})
}

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/spf13/cobra"

	"commentfmt/internal/comment"
	"commentfmt/internal/config"
)

// registerStyleFlags добавляет флаги, которые перекрывают commentfmt.toml.
func registerStyleFlags(cmd *cobra.Command) {
	cmd.Flags().String("style", "", "target comment style (starred-block|bare-block|separate-lines)")
	cmd.Flags().Bool("check-jsdoc", false, "also enforce separate-lines on /** doc blocks")
	cmd.Flags().String("ignore-pattern", "", "regexp for comments to leave alone (empty disables the filter)")
}

// configStart returns the directory the manifest search begins in.
func configStart(path string) string {
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		return filepath.Dir(path)
	}
	return path
}

// resolveOptions loads the nearest manifest and applies flag overrides.
func resolveOptions(cmd *cobra.Command, startDir string) (config.Resolved, error) {
	manifest, _, err := config.Discover(startDir)
	if err != nil {
		return config.Resolved{}, err
	}
	res := manifest.Resolved

	if cmd.Flags().Changed("style") {
		styleStr, err := cmd.Flags().GetString("style")
		if err != nil {
			return config.Resolved{}, err
		}
		style, err := comment.ParseStyle(styleStr)
		if err != nil {
			return config.Resolved{}, err
		}
		res.Options.Style = style
	}
	if cmd.Flags().Changed("check-jsdoc") {
		checkJSDoc, err := cmd.Flags().GetBool("check-jsdoc")
		if err != nil {
			return config.Resolved{}, err
		}
		res.Options.CheckJSDoc = checkJSDoc
	}
	if cmd.Flags().Changed("ignore-pattern") {
		pattern, err := cmd.Flags().GetString("ignore-pattern")
		if err != nil {
			return config.Resolved{}, err
		}
		if pattern == "" {
			res.Options.IgnorePattern = nil
		} else {
			re, err := regexp.Compile(pattern)
			if err != nil {
				return config.Resolved{}, fmt.Errorf("invalid ignore pattern: %w", err)
			}
			res.Options.IgnorePattern = re
		}
	}
	return res, nil
}

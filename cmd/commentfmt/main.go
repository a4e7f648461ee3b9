package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"commentfmt/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "commentfmt",
	Short: "Multi-line comment style checker and fixer",
	Long:  `commentfmt enforces one canonical multi-line comment form (starred-block, bare-block, or separate-lines) across C-style-commented sources`,
}

func main() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Version

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

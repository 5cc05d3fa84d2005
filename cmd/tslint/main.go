package main

import (
	"fmt"
	"os"
	"strings"

	"tslint/internal/config"
	"tslint/internal/crawler"
	"tslint/internal/diag"
	"tslint/internal/linter"
	"tslint/internal/rules"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "tslint",
		Short: "A static-analysis checker for TypeScript sources",
	}
	configPath string
	format     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "tslint.yaml", "Path to the configuration file")
	checkCmd.Flags().StringVarP(&format, "format", "f", "", "Output format: pretty or json (overrides config)")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(rulesCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Lint TypeScript files or directories",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if format != "" {
			cfg.Output = format
		}

		paths := args
		if len(paths) == 0 {
			paths = []string{"."}
		}
		files, err := collectFiles(paths, cfg)
		if err != nil {
			return err
		}

		bag, err := linter.New(cfg).LintFiles(cmd.Context(), files)
		if err != nil {
			return err
		}

		diags := bag.Items()
		if cfg.MaxDiagnostics > 0 && len(diags) > cfg.MaxDiagnostics {
			diags = diags[:cfg.MaxDiagnostics]
		}

		if cfg.Output == "json" {
			if err := diag.PrintJSON(os.Stdout, diags); err != nil {
				return err
			}
		} else {
			diag.Print(os.Stdout, diags)
		}

		if len(diags) > 0 {
			os.Exit(1)
		}
		return nil
	},
}

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the available rules",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, r := range rules.All() {
			line := r.Code()
			if tags := r.Tags(); len(tags) > 0 {
				line += " [" + strings.Join(tags, ", ") + "]"
			}
			fmt.Println(line)
			if docs := r.Docs(); docs != "" {
				summary, _, _ := strings.Cut(docs, "\n")
				fmt.Println("  " + summary)
			}
		}
	},
}

// collectFiles expands each argument: directories go through the crawler,
// plain files are taken as-is.
func collectFiles(paths []string, cfg *config.Config) ([]string, error) {
	c := crawler.New(cfg.Files.Exclude...)
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			if err := c.ScanProject(p, func(path string) {
				files = append(files, path)
			}); err != nil {
				return nil, fmt.Errorf("failed to scan %s: %w", p, err)
			}
			continue
		}
		files = append(files, p)
	}
	return files, nil
}

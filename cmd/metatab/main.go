// Package main provides the CLI entry point for metatab.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/rdmtools/metatab/pkg/metatab"
	"github.com/rdmtools/metatab/pkg/metatab/config"
	"github.com/rdmtools/metatab/pkg/metatab/logging"
	"github.com/rdmtools/metatab/pkg/metatab/source"
	"github.com/rdmtools/metatab/pkg/metatab/store"
)

var (
	logLevel  string
	logFormat string

	separator  string
	dryRun     bool
	outputPath string
	pretty     bool
	bucket     string
	region     string
	keyPrefix  string

	initOutput string
)

func main() {
	// A .env file may carry store credentials; absence is fine.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "metatab",
		Short: "Attach metadata to stored objects from tabular files",
		Long: `metatab maps rows of a tabular file (xlsx, csv, tsv) to objects in a
hierarchical store and attaches the remaining columns as metadata,
driven by a captured configuration document.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(logLevel, logFormat)
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format: text or json")

	applyCmd := &cobra.Command{
		Use:   "apply [config.yaml] [datafile]",
		Short: "Resolve rows and attach metadata (or report a dry run)",
		Args:  cobra.ExactArgs(2),
		RunE:  runApply,
	}
	applyCmd.Flags().StringVar(&separator, "separator", ",", "Field separator for .csv files")
	applyCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Record intended writes instead of applying them")
	applyCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Report output file path (default: stdout)")
	applyCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print the JSON report")
	applyCmd.Flags().StringVar(&bucket, "bucket", os.Getenv("METATAB_BUCKET"), "S3 bucket mirroring the store hierarchy")
	applyCmd.Flags().StringVar(&region, "region", os.Getenv("AWS_REGION"), "S3 bucket region")
	applyCmd.Flags().StringVar(&keyPrefix, "key-prefix", "", "Key prefix for the mirrored hierarchy")

	initCmd := &cobra.Command{
		Use:   "init [datafile]",
		Short: "Interactively capture a configuration for a tabular file",
		Args:  cobra.ExactArgs(1),
		RunE:  runInit,
	}
	initCmd.Flags().StringVarP(&initOutput, "output", "o", "metatab.yaml", "Configuration output file path")
	initCmd.Flags().StringVar(&separator, "separator", ",", "Field separator for .csv files")

	rootCmd.AddCommand(applyCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runApply(cmd *cobra.Command, args []string) error {
	configPath, dataPath := args[0], args[1]

	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return err
	}
	sep, err := parseSeparator(separator)
	if err != nil {
		return err
	}

	opts := metatab.Options{Separator: sep}
	if !dryRun {
		if bucket == "" {
			return fmt.Errorf("no target bucket configured; pass --bucket or use --dry-run")
		}
		writer, err := store.NewS3Writer(cmd.Context(), store.S3Options{
			Bucket:          bucket,
			Region:          region,
			KeyPrefix:       keyPrefix,
			AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		})
		if err != nil {
			return err
		}
		opts.Writer = writer
	}

	report, err := metatab.Apply(cmd.Context(), cfg, dataPath, opts)
	if err != nil {
		return err
	}

	var jsonData []byte
	if pretty {
		jsonData, err = json.MarshalIndent(report, "", "  ")
	} else {
		jsonData, err = json.Marshal(report)
	}
	if err != nil {
		return fmt.Errorf("failed to serialize report: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		return nil
	}
	fmt.Println(string(jsonData))
	return nil
}

func runInit(cmd *cobra.Command, args []string) error {
	sep, err := parseSeparator(separator)
	if err != nil {
		return err
	}
	ds, err := source.Load(args[0], source.Options{Separator: sep})
	if err != nil {
		return err
	}

	cfg, err := config.NewBuilder(os.Stdin, os.Stdout).Run(ds)
	if err != nil {
		return err
	}
	if err := config.WriteFile(cfg, initOutput); err != nil {
		return err
	}
	fmt.Printf("Configuration written to %s\n", initOutput)
	return nil
}

func parseSeparator(s string) (rune, error) {
	switch s {
	case "", ",":
		return ',', nil
	case "\\t", "tab":
		return '\t', nil
	}
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, fmt.Errorf("invalid separator %q: must be a single character", s)
	}
	return runes[0], nil
}

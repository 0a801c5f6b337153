package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsachovadia/RapTrainer/internal/archive"
	"github.com/tsachovadia/RapTrainer/internal/cli"
	"github.com/tsachovadia/RapTrainer/internal/models"
	"github.com/tsachovadia/RapTrainer/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Handle --archive flag
	if flags.Archive {
		archivePath, err := archive.ArchiveHistory(cli.StorePath())
		if err != nil {
			return fmt.Errorf("failed to archive history: %w", err)
		}
		fmt.Printf("History archived to: %s\n", archivePath)
		return nil
	}

	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(cli.GetOpenAIKey())
		return lister.ListAvailableModels(ctx, os.Stdout)
	}

	// Create processor
	proc, err := processor.NewProcessor(ctx, flags)
	if err != nil {
		return err
	}

	switch {
	case flags.History:
		return proc.ShowHistory(ctx)
	case flags.ExportTier != "":
		n, err := proc.ExportTier(ctx, flags.ExportTier)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Exported %d entries to %s\n", n, flags.ExportTier)
		return nil
	case flags.Names:
		if len(args) == 0 {
			return fmt.Errorf("--names needs text")
		}
		proc.PrintNames(args[0])
		return nil
	case flags.BatchFile != "":
		_, err := proc.ProcessBatch(ctx)
		return err
	case len(args) > 0:
		_, err := proc.ProcessText(ctx, args[0])
		return err
	}

	// No text argument: read standard input unless it is a terminal
	if stat, err := os.Stdin.Stat(); err == nil && stat.Mode()&os.ModeCharDevice == 0 {
		return proc.ProcessReader(ctx, os.Stdin)
	}
	return cmd.Help()
}

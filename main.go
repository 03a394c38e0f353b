package main

import (
	"fmt"
	"os"
	"time"

	"booking-scraper/config"
	"booking-scraper/services"
	"booking-scraper/utils"

	"github.com/spf13/cobra"
)

var (
	flagDelay  float64
	flagOutput string
	flagFormat string
	flagMode   string
	flagSaveDB bool
)

var rootCmd = &cobra.Command{
	Use:           "booking-scraper <url>",
	Short:         "Scrape hotel data from a Booking.com search results page",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().Float64Var(&flagDelay, "delay", 1.0, "delay between requests in seconds (reserved for multi-page runs)")
	rootCmd.Flags().StringVar(&flagOutput, "output", "", "output filename without extension")
	rootCmd.Flags().StringVar(&flagFormat, "format", config.FormatCSV, "output format: csv, json or both")
	rootCmd.Flags().StringVar(&flagMode, "mode", string(config.ModeOverwrite), "CSV write mode: overwrite or append")
	rootCmd.Flags().BoolVar(&flagSaveDB, "save-db", false, "also save results to PostgreSQL")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig()
	if err != nil {
		utils.Error("%v", err)
		return err
	}
	url := args[0]

	utils.Info("Scraper starting | url=%s format=%s mode=%s timeout=%v",
		url, cfg.Format, cfg.WriteMode, cfg.RequestTimeout)

	pipeline := services.NewPipeline(cfg)
	count, err := pipeline.Execute(cmd.Context(), url)
	if err != nil {
		utils.Error("Scraping failed: %v", err)
		return err
	}
	if count == 0 {
		return nil
	}

	fmt.Printf("Successfully scraped %d hotels!\n", count)
	return nil
}

func buildConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.RequestDelay = time.Duration(flagDelay * float64(time.Second))
	cfg.OutputName = flagOutput
	cfg.SaveDB = flagSaveDB

	switch flagFormat {
	case config.FormatCSV, config.FormatJSON, config.FormatBoth:
		cfg.Format = flagFormat
	default:
		return nil, fmt.Errorf("unknown format %q (want csv, json or both)", flagFormat)
	}

	switch config.WriteMode(flagMode) {
	case config.ModeOverwrite, config.ModeAppend:
		cfg.WriteMode = config.WriteMode(flagMode)
	default:
		return nil, fmt.Errorf("unknown write mode %q (want overwrite or append)", flagMode)
	}

	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/edupulse/channel-insights/model"
)

var (
	analyzeChannels     []string
	analyzeChannelsFile string
	analyzeWindow       int
	analyzeConcurrency  int
	analyzeJSON         bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze one or more YouTube channels",
	Long: `Analyze resolves each channel URL, discovers videos published in the
trailing time window, and prints engagement and growth analytics.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringSliceVar(&analyzeChannels, "channels", nil, "Channel URLs or handles to analyze")
	analyzeCmd.Flags().StringVar(&analyzeChannelsFile, "channels-file", "", "File with one channel URL per line")
	analyzeCmd.Flags().IntVar(&analyzeWindow, "window", 0, "Time window in days (1-30, default from config)")
	analyzeCmd.Flags().IntVar(&analyzeConcurrency, "concurrency", 0, "Channels analyzed in parallel (default from config)")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the full response as JSON")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	channels, err := collectChannels()
	if err != nil {
		return err
	}
	if len(channels) == 0 {
		return fmt.Errorf("no channels given: use --channels or --channels-file")
	}

	window := analyzeWindow
	if window == 0 {
		window = cfg.Analysis.DefaultWindowDays
	}
	if err := model.ValidateTimeWindow(window); err != nil {
		return err
	}

	ctx := cmd.Context()
	a, cleanup, err := buildAnalyzer(ctx, cfg, analyzeConcurrency)
	if err != nil {
		return err
	}
	defer cleanup()

	response, err := a.AnalyzeAll(ctx, channels, window)
	if err != nil {
		return err
	}

	if analyzeJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(response)
	}

	printSummary(response)
	return nil
}

// collectChannels merges the --channels flag with the channels file. Blank
// lines and #-comments in the file are skipped.
func collectChannels() ([]string, error) {
	channels := append([]string{}, analyzeChannels...)

	if analyzeChannelsFile != "" {
		data, err := os.ReadFile(analyzeChannelsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read channels file: %w", err)
		}
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			channels = append(channels, line)
		}
	}

	return channels, nil
}

func printSummary(response *model.AnalysisResponse) {
	fmt.Printf("Request %s: %d channels, %d videos, %d total views\n",
		response.RequestID,
		response.Metadata.IndividualChannelCount,
		response.Metadata.TotalVideos,
		response.Metadata.TotalViews)

	for _, result := range response.Channels {
		if result.Failed() {
			fmt.Printf("  %s: FAILED (%s)\n", result.ChannelURL, result.Error)
			continue
		}
		fmt.Printf("  %s (%s): %d videos, %.2f%% engagement, trend %s, score %d\n",
			result.ChannelName,
			result.ChannelID,
			result.Analytics.TotalVideos,
			result.Analytics.EngagementRate,
			result.Analytics.ViewsGrowthTrend,
			result.Analytics.PerformanceScore)
	}

	log.Info().Str("request_id", response.RequestID).Msg("Analysis finished")
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/kurihiro0119/github-profile-advisor/internal/advisor"
	"github.com/kurihiro0119/github-profile-advisor/internal/analyzer"
	"github.com/kurihiro0119/github-profile-advisor/internal/collector"
	"github.com/kurihiro0119/github-profile-advisor/internal/config"
	"github.com/kurihiro0119/github-profile-advisor/internal/domain"
	"github.com/kurihiro0119/github-profile-advisor/internal/rating"
	"github.com/kurihiro0119/github-profile-advisor/pkg/client"
)

var (
	cfgFile    string
	outputJSON bool
	remote     bool
)

var rootCmd = &cobra.Command{
	Use:   "profile-advisor",
	Short: "GitHub profile rating tool",
	Long: `A CLI tool for rating GitHub profiles.

It reads a user's profile, repositories, commits and public events from GitHub,
computes a 0-10 rating and lists concrete ways to improve the profile.`,
	SilenceUsage: true,
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [username]",
	Short: "Rate a GitHub profile",
	Long: `Rate a GitHub profile and print improvement tips.

By default the analysis runs locally and needs GITHUB_TOKEN. With --remote the
request is sent to a running API server at API_ENDPOINT.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the API server",
	Args:  cobra.NoArgs,
	RunE:  runHealth,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML config file (environment and .env still apply)")
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "output in JSON format")
	analyzeCmd.Flags().BoolVar(&remote, "remote", false, "analyze through the API server instead of locally")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(healthCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.LoadFile(cfgFile)
	}
	return config.Load()
}

// commandContext returns the context of cmd, or Background when cmd was not
// run through Execute
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	username := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx := commandContext(cmd)

	var (
		report    *domain.Report
		breakdown *rating.Breakdown
	)

	if remote {
		report, err = client.NewClient(cfg.APIEndpoint).AnalyzeProfile(ctx, username)
		if err != nil {
			return fmt.Errorf("failed to analyze profile: %w", err)
		}
	} else {
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		coll, err := collector.NewGitHubCollector(cfg.GitHubToken, collector.Options{
			BaseURL: cfg.GitHubAPIURL,
			Timeout: cfg.UpstreamTimeout,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize GitHub collector: %w", err)
		}

		a := analyzer.NewAnalyzer(coll, rating.NewEngine(), advisor.NewAdvisor(), nil)
		report, breakdown, err = a.AnalyzeDetailed(ctx, username)
		if err != nil {
			return fmt.Errorf("failed to analyze profile: %w", err)
		}
	}

	if outputJSON {
		return printJSON(cmd.OutOrStdout(), report)
	}
	printReport(cmd.OutOrStdout(), report, breakdown)
	return nil
}

func runHealth(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := client.NewClient(cfg.APIEndpoint).HealthCheck(commandContext(cmd)); err != nil {
		return fmt.Errorf("API server at %s is unhealthy: %w", cfg.APIEndpoint, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "API server at %s is healthy\n", cfg.APIEndpoint)
	return nil
}

func printJSON(w io.Writer, report *domain.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func printReport(w io.Writer, report *domain.Report, breakdown *rating.Breakdown) {
	stack := report.TechStack
	if stack == "" {
		stack = "-"
	}

	fmt.Fprintf(w, "\nProfile: %s\n\n", report.ProfileName)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Metric", "Value"})
	table.Append([]string{"Followers", fmt.Sprintf("%d", report.Followers)})
	table.Append([]string{"Predominant Tech Stack", stack})
	table.Append([]string{"Rating", fmt.Sprintf("%.2f / 10", report.Rating)})
	table.Render()

	if breakdown != nil {
		fmt.Fprintln(w, "\nRating breakdown:")
		scores := tablewriter.NewWriter(w)
		scores.SetHeader([]string{"Factor", "Score", "Max"})
		scores.Append([]string{"Followers", fmt.Sprintf("%.2f", breakdown.Followers), "4"})
		scores.Append([]string{"Public repositories", fmt.Sprintf("%.2f", breakdown.PublicRepos), "3"})
		scores.Append([]string{"Stars", fmt.Sprintf("%.2f", breakdown.Stars), "2"})
		scores.Append([]string{"Forks", fmt.Sprintf("%.2f", breakdown.Forks), "1"})
		scores.Append([]string{"Bio", fmt.Sprintf("%.2f", breakdown.Bio), "1"})
		scores.Append([]string{"Repository descriptions", fmt.Sprintf("%.2f", breakdown.RepoDescriptions), "1"})
		scores.Append([]string{"Profile links", fmt.Sprintf("%.2f", breakdown.Backlinks), "1"})
		scores.SetFooter([]string{"Total (capped at 10)", fmt.Sprintf("%.2f", breakdown.Total), "10"})
		scores.Render()
	}

	if len(report.Tips) == 0 {
		fmt.Fprintln(w, "\nNo improvements to suggest.")
		return
	}
	fmt.Fprintln(w, "\nImprovement tips:")
	for i, tip := range report.Tips {
		fmt.Fprintf(w, "  %d. %s\n", i+1, tip)
	}
}

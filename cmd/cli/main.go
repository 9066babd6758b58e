package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "golibro-cli",
		Short: "Golibro CLI tool",
		Long:  `A command line interface for interacting with the Golibro ledger API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the Golibro API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(summaryCmd())
	rootCmd.AddCommand(entriesCmd())
	rootCmd.AddCommand(chartCmd())

	ledgerCmd := &cobra.Command{
		Use:   "ledger",
		Short: "Ledger operations",
	}
	ledgerCmd.AddCommand(consistencyCmd())
	rootCmd.AddCommand(ledgerCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func summaryCmd() *cobra.Command {
	var period, ref, from, to, query string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show debit, credit and balance totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			params := url.Values{}
			if period != "" {
				params.Set("period", period)
			}
			if ref != "" {
				params.Set("ref", ref)
			}
			if from != "" {
				params.Set("from", from)
			}
			if to != "" {
				params.Set("to", to)
			}
			if query != "" {
				params.Set("q", query)
			}

			return getJSON("/api/v1/summary", params)
		},
	}

	cmd.Flags().StringVar(&period, "period", "", "Aggregation period: all, month or year")
	cmd.Flags().StringVar(&ref, "ref", "", "Reference date for the period (YYYY-MM-DD)")
	cmd.Flags().StringVar(&from, "from", "", "Start date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&to, "to", "", "End date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVarP(&query, "query", "q", "", "Free text filter")

	return cmd
}

func entriesCmd() *cobra.Command {
	var from, to, query string

	cmd := &cobra.Command{
		Use:   "entries",
		Short: "List journal entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			params := url.Values{}
			if from != "" {
				params.Set("from", from)
			}
			if to != "" {
				params.Set("to", to)
			}
			if query != "" {
				params.Set("q", query)
			}

			return getJSON("/api/v1/entries", params)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Start date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&to, "to", "", "End date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVarP(&query, "query", "q", "", "Free text filter")

	return cmd
}

func chartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chart",
		Short: "Show the chart of accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON("/api/v1/chart", nil)
		},
	}
}

func consistencyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "consistency",
		Short: "Check that total debits equal total credits",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := &http.Client{Timeout: timeout}
			resp, err := client.Get(baseURL + "/api/v1/ledger/consistency")
			if err != nil {
				return fmt.Errorf("request failed: %w", err)
			}
			defer resp.Body.Close()

			body, _ := io.ReadAll(resp.Body)

			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("consistency check FAILED (status %d): %s", resp.StatusCode, body)
			}

			var result map[string]any
			if err := json.Unmarshal(body, &result); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			fmt.Println("Consistency check PASSED")
			if consistent, ok := result["consistent"].(bool); ok {
				fmt.Printf("Consistent: %v\n", consistent)
			}

			return nil
		},
	}
}

// getJSON fetches path with params and pretty-prints the JSON body.
func getJSON(path string, params url.Values) error {
	u := baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(u)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("request failed (status %d): %s", resp.StatusCode, body)
	}

	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	printJSON(payload)
	return nil
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("failed to render output: %v\n", err)
		return
	}

	fmt.Println(string(out))
}

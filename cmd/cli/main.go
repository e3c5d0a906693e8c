package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var (
	baseURL   string
	timeout   time.Duration
	authToken string

	bcryptGenerate = bcrypt.GenerateFromPassword
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "finboard-cli",
		Short: "Finboard CLI tool",
		Long:  `A command line interface for interacting with the Finboard API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the Finboard API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
	rootCmd.PersistentFlags().StringVar(&authToken, "token", "", "JWT bearer token")

	healthCmd := &cobra.Command{
		Use:   "health",
		Short: "Check API health",
		Run: func(cmd *cobra.Command, args []string) {
			checkHealth()
		},
	}

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Reporting operations",
	}

	var reportDate string
	accruedCmd := &cobra.Command{
		Use:   "accrued",
		Short: "Show the accrued cost total at a reference date",
		Run: func(cmd *cobra.Command, args []string) {
			path := "/api/v1/reports/accrued"
			if reportDate != "" {
				path += "?date=" + reportDate
			}
			getAndPrint(path)
		},
	}
	accruedCmd.Flags().StringVar(&reportDate, "date", "", "Reference date (YYYY-MM-DD, defaults to today)")

	var summaryMonth string
	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the monthly cost/revenue summary",
		Run: func(cmd *cobra.Command, args []string) {
			path := "/api/v1/reports/summary"
			if summaryMonth != "" {
				path += "?month=" + summaryMonth
			}
			getAndPrint(path)
		},
	}
	summaryCmd.Flags().StringVar(&summaryMonth, "month", "", "Month (YYYY-MM, defaults to the current month)")

	reportCmd.AddCommand(accruedCmd, summaryCmd)

	costsCmd := &cobra.Command{
		Use:   "costs",
		Short: "Cost record operations",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List cost records",
		Run: func(cmd *cobra.Command, args []string) {
			listCosts()
		},
	}
	costsCmd.AddCommand(listCmd)

	rootCmd.AddCommand(healthCmd, reportCmd, costsCmd, hashPasswordCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func hashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password [password]",
		Short: "Hash a password for manual user provisioning",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := bcryptGenerate([]byte(args[0]), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			fmt.Println(string(hash))
			return nil
		},
	}
}

func checkHealth() {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + "/health")
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Health check FAILED (Status: %d)\n", resp.StatusCode)
		os.Exit(1)
	}

	fmt.Println("Health check PASSED")
}

func getAndPrint(path string) {
	body, status := doGet(path)
	if status != http.StatusOK {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", status, string(body))
		os.Exit(1)
	}

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	printJSON(result)
}

func listCosts() {
	body, status := doGet("/api/v1/costs/")
	if status != http.StatusOK {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", status, string(body))
		os.Exit(1)
	}

	var list struct {
		Costs []struct {
			ID          string `json:"id"`
			Amount      string `json:"amount"`
			Frequency   string `json:"frequency"`
			Active      bool   `json:"active"`
			Description string `json:"description"`
		} `json:"costs"`
		Total int64 `json:"total"`
	}
	if err := json.Unmarshal(body, &list); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%-28s %-12s %-9s %-7s %s\n", "ID", "AMOUNT", "FREQ", "ACTIVE", "DESCRIPTION")
	for _, c := range list.Costs {
		fmt.Printf("%-28s %-12s %-9s %-7v %s\n", c.ID, c.Amount, c.Frequency, c.Active, truncate(c.Description, 40))
	}
	fmt.Printf("Total: %d\n", list.Total)
}

func doGet(path string) ([]byte, int) {
	client := &http.Client{Timeout: timeout}

	req, err := http.NewRequest(http.MethodGet, baseURL+path, nil)
	if err != nil {
		fmt.Printf("Error building request: %v\n", err)
		os.Exit(1)
	}
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}

	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	return body, resp.StatusCode
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("Failed to render JSON: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/iho/quickledger/internal/adapter/clock"
	"github.com/iho/quickledger/internal/adapter/http/dto"
	"github.com/iho/quickledger/internal/adapter/idgen"
	"github.com/iho/quickledger/internal/domain"
	"github.com/iho/quickledger/internal/infrastructure/catalog"
	"github.com/iho/quickledger/internal/infrastructure/logger"
	"github.com/iho/quickledger/internal/infrastructure/metrics"
	"github.com/iho/quickledger/internal/parser"
	"github.com/iho/quickledger/internal/usecase"
)

var (
	baseURL      string
	timeout      time.Duration
	expensesPath string
	defaultPayer string
	atFlag       string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "quickledger",
		Short:         "QuickLedger CLI tool",
		Long:          `Turn shorthand spending and transfer notes into balanced double-entry transactions.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "", "Base URL of a QuickLedger server; parse locally when empty")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
	rootCmd.PersistentFlags().StringVar(&expensesPath, "expenses", "", "YAML expense table overriding the built-in one")
	rootCmd.PersistentFlags().StringVar(&defaultPayer, "payer", parser.DefaultPayer, "Asset hint used when a spending names no payer")

	rootCmd.AddCommand(parseCmd(), batchCmd(), expensesCmd())

	return rootCmd
}

func parseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <text...>",
		Short: "Parse one utterance into a transaction",
		Example: `  quickledger parse 120 usd cafe
  quickledger parse "transfer 100 try pavel to 100 try alena ; rent" --at 2024-03-09`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := parseInstant(atFlag)
			if err != nil {
				return err
			}

			req := dto.ParseRequest{Text: strings.Join(args, " "), At: at}
			if baseURL != "" {
				var resp dto.TransactionResponse
				if err := newAPIClient(baseURL, timeout).post(contextOf(cmd), "/api/v1/transactions/parse", req, &resp); err != nil {
					return err
				}
				printJSON(resp)
				return nil
			}

			uc, err := newLocalUseCase()
			if err != nil {
				return err
			}

			result, err := uc.Parse(contextOf(cmd), req.ToUseCaseInput())
			if err != nil {
				return err
			}

			printJSON(dto.TransactionFromResult(result))
			return nil
		},
	}

	cmd.Flags().StringVar(&atFlag, "at", "", "Transaction instant (RFC3339 or YYYY-MM-DD); defaults to now")

	return cmd
}

func batchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <file|->",
		Short: "Parse one utterance per line; blank and # lines are skipped",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := parseInstant(atFlag)
			if err != nil {
				return err
			}

			lines, err := readLines(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}

			req := dto.ParseBatchRequest{Lines: lines, At: at}
			if baseURL != "" {
				var resp dto.BatchResponse
				if err := newAPIClient(baseURL, timeout).post(contextOf(cmd), "/api/v1/transactions/parse/batch", req, &resp); err != nil {
					return err
				}
				printJSON(resp)
				return nil
			}

			uc, err := newLocalUseCase()
			if err != nil {
				return err
			}

			results, err := uc.ParseBatch(contextOf(cmd), req.ToUseCaseInput())
			if err != nil {
				return err
			}

			printJSON(dto.BatchResponse{
				Count:        len(results),
				Transactions: dto.TransactionsFromResults(results),
			})
			return nil
		},
	}

	cmd.Flags().StringVar(&atFlag, "at", "", "Instant shared by every line (RFC3339 or YYYY-MM-DD); defaults to now")

	return cmd
}

func expensesCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "expenses",
		Short: "Print the expense table",
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := loadExpenseTable()
			if err != nil {
				return err
			}

			switch format {
			case "json":
				printJSON(dto.ExpenseTableFromDomain(table))
			case "yaml":
				out, err := catalog.Marshal(table)
				if err != nil {
					return err
				}
				fmt.Print(string(out))
			default:
				return fmt.Errorf("unknown format %q (want json or yaml)", format)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json or yaml")

	return cmd
}

func loadExpenseTable() (*domain.ExpenseTable, error) {
	if expensesPath == "" {
		return domain.DefaultExpenseTable(), nil
	}
	return catalog.LoadExpenseTable(expensesPath)
}

func newLocalUseCase() (*usecase.ParseUseCase, error) {
	table, err := loadExpenseTable()
	if err != nil {
		return nil, err
	}

	p := parser.New(parser.WithExpenseTable(table), parser.WithDefaultPayer(defaultPayer))

	return usecase.NewParseUseCase(
		p,
		clock.System{},
		idgen.NewULIDGenerator(),
		metrics.New(prometheus.NewRegistry()),
		logger.New(logger.Config{Level: "error", Format: "console", Output: os.Stderr}),
		usecase.DefaultMaxBatchSize,
	), nil
}

// parseInstant accepts RFC3339 or a bare date. Empty means "use the clock".
func parseInstant(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}

	for _, layout := range []string{time.RFC3339, domain.DateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}

	return nil, fmt.Errorf("invalid --at %q: want RFC3339 or YYYY-MM-DD", s)
}

func readLines(name string, stdin io.Reader) ([]string, error) {
	var r io.Reader = stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	return lines, scanner.Err()
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(v)
}

// Package cli provides the Cobra-based CLI for shopledger.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"shopledger/domain"
	"shopledger/inventory"
	"shopledger/report"
	"shopledger/store"
	"shopledger/suggest"
)

var (
	rootCmd = &cobra.Command{
		Use:   "shopledger",
		Short: "Inventory and daily-sales tracker for a small shop",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// IMPORTANT: allow tests to inject store
			if catalogStore != nil {
				return nil
			}

			if cfg := viper.GetString("config"); cfg != "" {
				viper.SetConfigFile(cfg)
				if err := viper.ReadInConfig(); err != nil {
					return err
				}
			}

			lvlStr := strings.ToLower(viper.GetString("log-level"))
			lvl := slog.LevelInfo
			switch lvlStr {
			case "debug":
				lvl = slog.LevelDebug
			case "warn", "warning":
				lvl = slog.LevelWarn
			case "error":
				lvl = slog.LevelError
			}
			slog.SetDefault(slog.New(
				slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}),
			))

			gw, err := store.NewGateway(
				viper.GetString("store"),
				viper.GetString("store-file"),
				slog.Default(),
			)
			if err != nil {
				return err
			}
			catalogStore, err = inventory.NewStore(cmd.Context(), gw, slog.Default())
			return err
		},
	}

	catalogStore *inventory.Store
)

func init() {
	rootCmd.AddCommand(newShellCmd())

	rootCmd.PersistentFlags().String("store", "file", "store backend: file|memory")
	rootCmd.PersistentFlags().String("store-file", "data/catalog.json", "catalog slot path")
	rootCmd.PersistentFlags().String("config", "", "config file")
	rootCmd.PersistentFlags().String("log-level", "info", "log level")

	viper.BindPFlag("store", rootCmd.PersistentFlags().Lookup("store"))
	viper.BindPFlag("store-file", rootCmd.PersistentFlags().Lookup("store-file"))
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.SetDefault("admin-user", "pari")
	viper.SetDefault("admin-pass", "654321")
	viper.SetDefault("suggest-threshold", suggest.DefaultThreshold)
	viper.SetEnvPrefix("SHOPLEDGER")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	viper.BindEnv("gemini_api_key", "SHOPLEDGER_GEMINI_API_KEY", "GEMINI_API_KEY")

	// add
	var name, category string
	var stock int
	var wholesale, rate float64
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a product to the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			draft := domain.Draft{
				Name:          name,
				Category:      category,
				Stock:         stock,
				WholesaleRate: wholesale,
				OurRate:       rate,
			}
			p, err := catalogStore.AddProduct(context.Background(), draft)
			if err != nil {
				if domain.IsValidationError(err) {
					fmt.Fprintln(cmd.ErrOrStderr(), err)
					return nil
				}
				return err
			}
			slog.Info("product added", "product_id", p.ID, "name", p.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "added %s (%s)\n", p.Name, p.ID)
			return nil
		},
	}
	addCmd.Flags().StringVar(&name, "name", "", "product name")
	addCmd.Flags().StringVar(&category, "category", "", "category")
	addCmd.Flags().IntVar(&stock, "stock", 0, "initial stock")
	addCmd.Flags().Float64Var(&wholesale, "wholesale", 0, "wholesale rate per unit")
	addCmd.Flags().Float64Var(&rate, "rate", 0, "our rate per unit")
	rootCmd.AddCommand(addCmd)

	// sell
	var sellUnits int
	sellCmd := &cobra.Command{
		Use:   "sell <id>",
		Short: "Record today's sales for a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := catalogStore.RecordSales(context.Background(), args[0], sellUnits)
			if err != nil {
				if domain.IsNotFoundError(err) || domain.IsValidationError(err) {
					fmt.Fprintln(cmd.ErrOrStderr(), err)
					return nil
				}
				return err
			}
			if p.Sales < sellUnits {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: sales capped at stock (%d)\n", p.Name, p.Sales)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: sales set to %d (%d remaining)\n", p.Name, p.Sales, p.Remaining())
			}
			return nil
		},
	}
	sellCmd.Flags().IntVar(&sellUnits, "units", 0, "units sold today")
	rootCmd.AddCommand(sellCmd)

	// restock
	var restockUnits int
	restockCmd := &cobra.Command{
		Use:   "restock <id>",
		Short: "Adjust stock by a signed amount",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := catalogStore.AdjustStock(context.Background(), args[0], restockUnits)
			if err != nil {
				if domain.IsNotFoundError(err) || domain.IsInvariantViolationError(err) {
					fmt.Fprintln(cmd.ErrOrStderr(), err)
					return nil
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: stock now %d\n", p.Name, p.Stock)
			return nil
		},
	}
	restockCmd.Flags().IntVar(&restockUnits, "units", 0, "units to add (negative to correct)")
	rootCmd.AddCommand(restockCmd)

	// list
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List products grouped by category",
		RunE: func(cmd *cobra.Command, args []string) error {
			printCatalog(cmd, catalogStore.Snapshot())
			return nil
		},
	}
	rootCmd.AddCommand(listCmd)

	// summary
	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Show today's totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			t := catalogStore.Snapshot().Totals()
			fmt.Fprintf(cmd.OutOrStdout(), "Today's Profit:      %.2f\n", t.Profit)
			fmt.Fprintf(cmd.OutOrStdout(), "Today's Sales Value: %.2f\n", t.SalesValue)
			fmt.Fprintf(cmd.OutOrStdout(), "Total Items Sold:    %d\n", t.ItemsSold)
			return nil
		},
	}
	rootCmd.AddCommand(summaryCmd)

	// reset
	var resetForce bool
	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Zero all sales counters to start a new day",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !resetForce {
				fmt.Fprint(cmd.OutOrStdout(), "Reset all sales counters? (y/N): ")
				var resp string
				if _, err := fmt.Scanln(&resp); err != nil || (resp != "y" && resp != "Y") {
					fmt.Fprintln(cmd.OutOrStdout(), "aborted")
					return nil
				}
			}
			if err := catalogStore.ResetSales(context.Background()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "sales counters reset")
			return nil
		},
	}
	resetCmd.Flags().BoolVar(&resetForce, "force", false, "skip confirmation")
	rootCmd.AddCommand(resetCmd)

	// delete
	var deleteForce bool
	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a product from the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !deleteForce {
				fmt.Fprintf(cmd.OutOrStdout(), "Delete %s? (y/N): ", args[0])
				var resp string
				if _, err := fmt.Scanln(&resp); err != nil || (resp != "y" && resp != "Y") {
					fmt.Fprintln(cmd.OutOrStdout(), "aborted")
					return nil
				}
			}
			if err := catalogStore.DeleteProduct(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "deleted")
			return nil
		},
	}
	deleteCmd.Flags().BoolVar(&deleteForce, "force", false, "skip confirmation")
	rootCmd.AddCommand(deleteCmd)

	// report
	var reportDir string
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Export the daily report workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := report.Export(catalogStore.Snapshot(), reportDir)
			if err != nil {
				return err
			}
			slog.Info("report exported", "file", name)
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}
	reportCmd.Flags().StringVar(&reportDir, "dir", ".", "output directory")
	rootCmd.AddCommand(reportCmd)

	// suggest
	var threshold int
	suggestCmd := &cobra.Command{
		Use:   "suggest",
		Short: "Ask for a daily-special promotion covering high-stock items",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("threshold") {
				threshold = viper.GetInt("suggest-threshold")
			}
			items := suggest.HighStock(catalogStore.Snapshot(), threshold)
			client := suggest.NewClient(viper.GetString("gemini_api_key"))
			text, err := client.DailySpecial(cmd.Context(), items)
			if err != nil {
				if domain.IsSuggestionUnavailableError(err) {
					slog.Warn("suggestion unavailable", "error", err)
					fmt.Fprintln(cmd.OutOrStdout(), suggest.FallbackText)
					return nil
				}
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
	suggestCmd.Flags().IntVar(&threshold, "threshold", suggest.DefaultThreshold, "minimum stock to pitch an item")
	rootCmd.AddCommand(suggestCmd)
}

// printCatalog renders the catalog grouped by category, sorted by name
// within each group. Grouping is a view concern only; storage order is
// untouched.
func printCatalog(cmd *cobra.Command, snap domain.Catalog) {
	byCategory := make(map[string][]domain.Product)
	for _, p := range snap.Products {
		byCategory[p.Category] = append(byCategory[p.Category], p)
	}
	categories := make([]string, 0, len(byCategory))
	for c := range byCategory {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	w := cmd.OutOrStdout()
	for _, c := range categories {
		group := byCategory[c]
		sort.Slice(group, func(i, j int) bool { return group[i].Name < group[j].Name })
		fmt.Fprintf(w, "%s\n", c)
		for _, p := range group {
			fmt.Fprintf(w, "  %s | %s | stock %d | sold %d | remaining %d | %.2f -> %.2f\n",
				p.ID, p.Name, p.Stock, p.Sales, p.Remaining(), p.WholesaleRate, p.OurRate)
		}
	}
}

func Execute() error {
	return rootCmd.Execute()
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vegasq/tripstat/internal/config"
	"github.com/vegasq/tripstat/internal/engine"
	"github.com/vegasq/tripstat/internal/logger"
	"github.com/vegasq/tripstat/internal/output"
	"github.com/vegasq/tripstat/internal/reader"
)

var rootCmd = &cobra.Command{
	Use:   "tripstat",
	Short: "Filter and aggregate statistics over trip record datasets",
	Long: `tripstat runs ad-hoc analytics over parquet trip data: optional
range and time-window filters, then count/min/max/mean/stddev for a
numeric attribute, globally or broken out by a grouping column.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newQueryCmd())
	rootCmd.AddCommand(newSchemaCmd())
	rootCmd.AddCommand(newConvertCmd())
}

func newQueryCmd() *cobra.Command {
	var (
		mode       string
		input      string
		attribute  string
		minValue   float64
		maxValue   float64
		start      string
		end        string
		timeColumn string
		groupBy    string
		outPath    string
		format     string
	)

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Run a filter or group query against a dataset",
		Example: `  tripstat query --mode filter --input trips.parquet --attribute total_amount --min-value 5
  tripstat query --mode group --input 'data/*.parquet' --attribute trip_distance --group-by passenger_count`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger.Init(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
			log := logger.Get()

			if input == "" {
				input = cfg.Input
			}
			if input == "" {
				return fmt.Errorf("no input: set --input or TRIPSTAT_INPUT")
			}
			if timeColumn == "" {
				timeColumn = cfg.TimeColumn
			}

			spec := engine.QuerySpec{
				Mode:       engine.Mode(mode),
				Attribute:  attribute,
				TimeColumn: timeColumn,
				Start:      start,
				End:        end,
				GroupBy:    groupBy,
			}
			if cmd.Flags().Changed("min-value") {
				spec.MinValue = &minValue
			}
			if cmd.Flags().Changed("max-value") {
				spec.MaxValue = &maxValue
			}
			if spec.Mode != engine.ModeFilter && spec.Mode != engine.ModeGroup {
				return fmt.Errorf("unknown mode %q: want filter or group", mode)
			}

			log.Info("reading dataset", "input", input)
			tbl, err := reader.ReadTable(input)
			if err != nil {
				return err
			}
			log.Info("dataset loaded", "rows", tbl.Len(), "columns", len(tbl.Schema().Columns()))

			report, err := engine.Run(tbl, spec)
			if err != nil {
				return err
			}
			log.Info("query complete", "matched_rows", report.MatchedRows)

			var formatter output.Formatter
			switch format {
			case "table":
				formatter = output.NewTableFormatter(os.Stdout)
			case "json":
				formatter = output.NewJSONFormatter(os.Stdout)
			case "csv":
				formatter = output.NewCSVFormatter(os.Stdout)
			default:
				return fmt.Errorf("unsupported format %q: want table, json or csv", format)
			}
			if err := formatter.Format(report); err != nil {
				return err
			}

			if outPath != "" {
				log.Info("writing results", "output", outPath)
				if err := output.WriteParquet(outPath, report); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "", "Operation mode: filter or group (required)")
	cmd.Flags().StringVar(&input, "input", "", "Input parquet path or glob pattern")
	cmd.Flags().StringVar(&attribute, "attribute", "", "Numeric column to compute statistics on (required)")
	cmd.Flags().Float64Var(&minValue, "min-value", 0, "Minimum value for the attribute filter (inclusive)")
	cmd.Flags().Float64Var(&maxValue, "max-value", 0, "Maximum value for the attribute filter (inclusive)")
	cmd.Flags().StringVar(&start, "start", "", "Start datetime (inclusive), e.g. '2016-01-01 00:00:00'")
	cmd.Flags().StringVar(&end, "end", "", "End datetime (inclusive), e.g. '2016-01-31 23:59:59'")
	cmd.Flags().StringVar(&timeColumn, "time-column", "", "Timestamp column for the time window (default tpep_pickup_datetime)")
	cmd.Flags().StringVar(&groupBy, "group-by", "", "Column to group by in group mode")
	cmd.Flags().StringVar(&outPath, "output", "", "Optional parquet path to persist the results")
	cmd.Flags().StringVar(&format, "format", "table", "Output format: table, json, csv")
	_ = cmd.MarkFlagRequired("mode")
	_ = cmd.MarkFlagRequired("attribute")

	return cmd
}

func newSchemaCmd() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the column names and type tags of a dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := reader.NewReader(input)
			if err != nil {
				return err
			}
			defer func() { _ = r.Close() }()

			schema, err := r.Schema()
			if err != nil {
				return err
			}
			for _, col := range schema.Columns() {
				fmt.Printf("%s\t%s\n", col.Name, col.Kind)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "Input parquet file")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func newConvertCmd() *cobra.Command {
	var input, outPath string

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a CSV trip export to parquet",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger.Init(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
			log := logger.Get()

			tbl, err := reader.ReadCSV(input)
			if err != nil {
				return err
			}
			log.Info("CSV loaded", "rows", tbl.Len(), "columns", len(tbl.Schema().Columns()))

			if err := output.WriteTableParquet(outPath, tbl); err != nil {
				return err
			}
			log.Info("parquet written", "output", outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "Input CSV file")
	cmd.Flags().StringVar(&outPath, "output", "", "Output parquet file")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

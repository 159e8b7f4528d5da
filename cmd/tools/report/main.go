// Command report generates exchange-rate reports on the command line:
// raw series, descriptive statistics, moving averages and flagged
// variations, as tabular text or CSV.
package main

import (
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/ratescope/ratescope/internal/config"
	"github.com/ratescope/ratescope/internal/logging"
	"github.com/ratescope/ratescope/internal/repository"
	"github.com/ratescope/ratescope/internal/services"
)

const dateLayout = "2006-01-02"

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: report <command> [flags]

Commands:
  get      Print observations in a date range
  stats    Print descriptive statistics
  ma       Print the trailing moving average
  var      Print day-over-day variations above a threshold

Common flags:
  -config  Path to configuration file
  -start   Start date (YYYY-MM-DD, inclusive)
  -end     End date (YYYY-MM-DD, inclusive)
  -output  Write CSV to this file instead of printing a table

Command flags:
  ma  -window     Rows per moving-average window (default from config)
  var -threshold  Percent-change threshold (default from config)
`)
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	command := os.Args[1]

	fs := flag.NewFlagSet(command, flag.ExitOnError)
	configPath := fs.String("config", "", "Path to configuration file")
	start := fs.String("start", "", "Start date (YYYY-MM-DD)")
	end := fs.String("end", "", "End date (YYYY-MM-DD)")
	output := fs.String("output", "", "Output CSV file")
	window := fs.Int("window", 0, "Moving-average window in rows")
	threshold := fs.Float64("threshold", -1, "Variation threshold in percent")
	_ = fs.Parse(os.Args[2:])

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.NewFromConfig(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	if *window == 0 {
		*window = cfg.Analytics.DefaultWindow
	}
	if *threshold < 0 {
		*threshold = cfg.Analytics.DefaultThreshold
	}

	repo := repository.NewCSVRepository(cfg.Data.Path, logger)
	svc := services.NewRateService(logger, repo)

	var runErr error
	switch command {
	case "get":
		runErr = runGet(svc, *start, *end, *output)
	case "stats":
		runErr = runStats(svc, *start, *end)
	case "ma":
		runErr = runMovingAverage(svc, *window, *start, *end, *output)
	case "var":
		runErr = runVariations(svc, *threshold, *start, *end, *output)
	default:
		usage()
		os.Exit(2)
	}

	if runErr != nil {
		var svcErr *services.ServiceError
		if errors.As(runErr, &svcErr) {
			fmt.Fprintf(os.Stderr, "Error: %s\n", svcErr.Message)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		}
		os.Exit(1)
	}
}

func runGet(svc *services.RateService, start, end, output string) error {
	series, err := svc.GetSeries(start, end)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(series))
	for _, o := range series {
		rows = append(rows, []string{
			o.Date.Format(dateLayout),
			strconv.FormatFloat(o.Value, 'f', -1, 64),
		})
	}
	return emit([]string{"date", "value"}, rows, output)
}

func runStats(svc *services.RateService, start, end string) error {
	stats, err := svc.GetStatistics(start, end)
	if err != nil {
		return err
	}

	fmt.Println("=== Exchange-rate statistics ===")
	fmt.Printf("Period:       %s to %s\n",
		stats.StartDate.Format(dateLayout), stats.EndDate.Format(dateLayout))
	fmt.Printf("Observations: %d\n", stats.Count)
	fmt.Printf("Min:          %.2f\n", stats.Min)
	fmt.Printf("Max:          %.2f\n", stats.Max)
	fmt.Printf("Mean:         %.2f\n", stats.Mean)
	fmt.Printf("Median:       %.2f\n", stats.Median)
	fmt.Printf("Std dev:      %.2f\n", stats.StdDev)
	fmt.Printf("Start value:  %.2f\n", stats.StartValue)
	fmt.Printf("End value:    %.2f\n", stats.EndValue)
	fmt.Printf("Change:       %.2f\n", stats.Change)
	fmt.Printf("Change %%:     %.2f%%\n", stats.ChangePct)
	return nil
}

func runMovingAverage(svc *services.RateService, window int, start, end, output string) error {
	points, err := svc.GetMovingAverage(window, start, end)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(points))
	for _, p := range points {
		ma := ""
		if p.MovingAverage != nil {
			ma = strconv.FormatFloat(*p.MovingAverage, 'f', 4, 64)
		}
		rows = append(rows, []string{
			p.Date.Format(dateLayout),
			strconv.FormatFloat(p.Value, 'f', -1, 64),
			ma,
		})
	}
	header := []string{"date", "value", fmt.Sprintf("ma_%d", window)}
	return emit(header, rows, output)
}

func runVariations(svc *services.RateService, threshold float64, start, end, output string) error {
	variations, err := svc.GetVariations(threshold, start, end)
	if err != nil {
		return err
	}

	if len(variations) == 0 {
		fmt.Printf("No variations above %.2f%% in the requested range\n", threshold)
		return nil
	}

	rows := make([][]string, 0, len(variations))
	for _, v := range variations {
		rows = append(rows, []string{
			v.Date.Format(dateLayout),
			strconv.FormatFloat(v.Value, 'f', -1, 64),
			strconv.FormatFloat(v.ChangePct, 'f', 4, 64),
		})
	}
	return emit([]string{"date", "value", "change_pct"}, rows, output)
}

// emit writes the rows as CSV to the output file, or as an aligned table to
// stdout when no file is given.
func emit(header []string, rows [][]string, output string) error {
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() { _ = f.Close() }()

		w := csv.NewWriter(f)
		if err := w.Write(header); err != nil {
			return err
		}
		if err := w.WriteAll(rows); err != nil {
			return err
		}
		fmt.Printf("Wrote %d rows to %s\n", len(rows), output)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for i, col := range header {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, col)
	}
	fmt.Fprintln(w)
	for _, row := range rows {
		for i, col := range row {
			if i > 0 {
				fmt.Fprint(w, "\t")
			}
			fmt.Fprint(w, col)
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}

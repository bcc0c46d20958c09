package convert

import (
	"fmt"
	"os"

	"qbtime/chart"
	"qbtime/config"
	"qbtime/importer"
	"qbtime/internal/fswalk"
	"qbtime/output"
	"qbtime/timesheet"
)

type Options struct {
	// Plot displays the chart with the platform image viewer.
	Plot bool
	// SavePlot writes the chart PNG next to the input file.
	SavePlot bool
	// NoExport suppresses the summary file output.
	NoExport bool
	// Format overrides the configured export format (csv|excel).
	Format string
	// Viewer displays charts; when nil and Plot is set, the platform viewer
	// is probed once at the start of the run.
	Viewer chart.Viewer
	// Notice receives informational messages; nil discards them.
	Notice func(format string, args ...any)
}

type Result struct {
	FilesProcessed   int
	FilesSkipped     int
	RowsRead         int
	TotalsFound      int
	SummariesWritten int
	ChartsSaved      int
}

// Run converts each timesheet CSV reachable from paths: read, summarize,
// optionally chart, optionally write the summary, strictly in that order and
// one file at a time. With no paths the current directory is scanned.
// Chart failures are reported notices; everything else is fatal.
func Run(paths []string, cfg config.Config, opts Options) (*Result, error) {
	notice := opts.Notice
	if notice == nil {
		notice = func(string, ...any) {}
	}

	if len(paths) == 0 {
		paths = []string{"."}
	}

	result := &Result{}
	files, err := fswalk.CSVFiles(paths, func(path string) {
		result.FilesSkipped++
		notice("Ignoring %s", path)
	})
	if err != nil {
		return nil, err
	}

	var writer output.Writer
	if !opts.NoExport {
		format := opts.Format
		if format == "" {
			format = cfg.Export.Format
		}
		writer, err = output.WriterForFormat(format)
		if err != nil {
			return nil, err
		}
	}

	viewer := opts.Viewer
	if viewer == nil && opts.Plot {
		viewer = chart.NewViewer()
	}

	reader := &importer.CSVReader{}
	for _, file := range files {
		notice("Processing %s", file)

		rows, err := reader.Read(file)
		if err != nil {
			return nil, err
		}

		summary, err := timesheet.Summarize(rows, cfg.Report.WorkdayHours)
		if err != nil {
			return nil, fmt.Errorf("summarize %s: %w", file, err)
		}

		result.FilesProcessed++
		result.RowsRead += len(rows)
		result.TotalsFound += len(summary)

		if opts.Plot || opts.SavePlot {
			renderChart(file, summary, cfg, opts, viewer, notice, result)
		}

		if writer != nil {
			outPath := output.OutputPath(file, cfg.Report.OutputSuffix, writer.Ext())
			notice("Writing %s", outPath)
			if err := writer.Write(outPath, summary); err != nil {
				return nil, err
			}
			result.SummariesWritten++
		}
	}

	return result, nil
}

// renderChart produces the chart artifacts for one file. Charting is an
// optional capability: any failure here is reported and the run continues,
// so the summary export still happens.
func renderChart(file string, summary timesheet.Summary, cfg config.Config, opts Options, viewer chart.Viewer, notice func(string, ...any), result *Result) {
	chartOpts := chart.Options{
		WidthInches:  cfg.Chart.WidthInches,
		HeightInches: cfg.Chart.HeightInches,
	}

	target := output.OutputPath(file, cfg.Report.OutputSuffix, ".png")
	if !opts.SavePlot {
		// Display-only: render to a throwaway file instead of writing
		// next to the input.
		tmp, err := os.CreateTemp("", "qbtime-chart-*.png")
		if err != nil {
			notice("Cannot create chart for %s: %v", file, err)
			return
		}
		tmp.Close()
		target = tmp.Name()
	} else {
		notice("Saving %s", target)
	}

	if err := chart.SavePNG(target, summary, chartOpts); err != nil {
		notice("Cannot create chart for %s: %v", file, err)
		return
	}
	if opts.SavePlot {
		result.ChartsSaved++
	}

	if !opts.Plot {
		return
	}
	if viewer == nil || !viewer.Supported() {
		notice("Cannot display chart for %s: no image viewer available", file)
		return
	}
	if err := viewer.Show(target); err != nil {
		notice("Cannot display chart for %s: %v", file, err)
	}
}

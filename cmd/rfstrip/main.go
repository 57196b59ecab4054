// rfstrip renders a strip plot of per-sample log response factors from a
// chemical-analysis spreadsheet: one band per chemical (split by ionization
// mode), one dot per sample observation.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/carbocation/pfx"

	"github.com/chemplot/rfstrip/rfdata"
	"github.com/chemplot/rfstrip/stripchart"
	"github.com/chemplot/rfstrip/xlsload"
)

func main() {
	var input, sheet, sortFlag, modeFlag, output, pointsCSV, title string
	var width, height int
	var xMin, xMax float64
	var summary bool

	flag.StringVar(&input, "input", "", "Path to the XLS spreadsheet exported by the analysis workflow.")
	flag.StringVar(&sheet, "sheet", xlsload.DefaultSheet, "Name of the worksheet to read.")
	flag.StringVar(&sortFlag, "sort", "retention", "Row order before plotting: retention | median")
	flag.StringVar(&modeFlag, "mode", "both", "Ionization-mode filter: + | - | both")
	flag.StringVar(&output, "output", "rfstrip.svg", "Chart output file. Format is taken from the extension (.svg or .png).")
	flag.StringVar(&pointsCSV, "points", "", "(Optional) Also write the plot points to this CSV file.")
	flag.StringVar(&title, "title", "", "(Optional) Chart title.")
	flag.IntVar(&width, "width", 1280, "Chart width in pixels.")
	flag.IntVar(&height, "height", 720, "Chart height in pixels.")
	flag.Float64Var(&xMin, "xmin", 0, "(Optional) Lower bound of the log-RF axis. Requires -xmax > -xmin.")
	flag.Float64Var(&xMax, "xmax", 0, "(Optional) Upper bound of the log-RF axis.")
	flag.BoolVar(&summary, "summary", false, "(Optional) Print a per-chemical summary table to stdout.")
	flag.Parse()

	if input == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	sortKey, ok := rfdata.ParseSortKey(sortFlag)
	if !ok {
		log.Fatalf("Unknown -sort value %q (want retention or median)\n", sortFlag)
	}

	modeFilter, ok := rfdata.ParseModeFilter(modeFlag)
	if !ok {
		log.Fatalf("Unknown -mode value %q (want +, -, or both)\n", modeFlag)
	}

	format, err := formatFromExtension(output)
	if err != nil {
		log.Fatalln(err)
	}

	table, err := xlsload.Load(input, sheet)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}
	log.Printf("Loaded %d rows and %d columns from %s\n", len(table.Rows), len(table.Columns), input)

	rows, rejected := rfdata.Clean(table)
	for _, rej := range rejected {
		log.Println("Skipping", rej.Error())
	}
	if len(rows) == 0 {
		log.Fatalln("No usable rows after cleaning")
	}

	rfdata.SortRows(rows, sortKey)
	points := rfdata.BuildPoints(rows, modeFilter)
	log.Printf("Plotting %d points across %d rows (sort=%s mode=%s)\n", len(points), len(rows), sortKey, modeFilter)

	out, err := os.Create(output)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}
	defer out.Close()

	opts := stripchart.Options{
		Width:  width,
		Height: height,
		Format: format,
		Title:  title,
		XMin:   xMin,
		XMax:   xMax,
	}
	if err := stripchart.Render(out, points, opts); err != nil {
		log.Fatalln(pfx.Err(err))
	}

	if pointsCSV != "" {
		if err := writePoints(pointsCSV, points); err != nil {
			log.Fatalln(pfx.Err(err))
		}
	}

	if summary {
		printSummaries(rfdata.Summaries(rows))
	}
}

func formatFromExtension(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		return stripchart.FormatSVG, nil
	case ".png":
		return stripchart.FormatPNG, nil
	}

	return "", fmt.Errorf("Output file %q must end in .svg or .png", path)
}

func writePoints(path string, points []rfdata.PlotPoint) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return stripchart.WritePointsCSV(f, points)
}

func printSummaries(summaries []rfdata.ChemicalSummary) {
	fmt.Println(strings.Join([]string{
		"Chemical", "N", "Min", "Q1", "Median", "Q3", "Max", "Mean", "SD",
	}, "\t"))

	for _, s := range summaries {
		fmt.Printf("%s\t%d\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\n",
			s.Chemical, s.N, s.Min, s.Q1, s.Median, s.Q3, s.Max, s.Mean, s.StdDev)
	}
}

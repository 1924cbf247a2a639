// ctsummary prints per-(sample, primer group) descriptive statistics
// over the raw Ct readings of a thermocycler export, for eyeballing
// data quality before running relative quantification.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/montanaflynn/stats"

	"github.com/quantbio/qpcrmisc/ddct"
	"github.com/quantbio/qpcrmisc/platecsv"
)

func main() {
	var input, layoutName string
	var bins int
	var showHist bool

	flag.StringVar(&input, "file", "", "Delimited file with columns: Well, Sample Name, Primer, Ct")
	flag.StringVar(&layoutName, "layout", "generic", "Input layout. One of: "+platecsv.LayoutNames())
	flag.IntVar(&bins, "bins", 10, "Number of histogram buckets")
	flag.BoolVar(&showHist, "hist", false, "Print a histogram of all determined Ct values")

	flag.Parse()

	if input == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(input, layoutName, bins, showHist); err != nil {
		log.Fatalln(err)
	}
}

type ctGroup struct {
	Sample string
	Group  ddct.PrimerGroup
}

func run(input, layoutName string, bins int, showHist bool) error {
	pr, err := platecsv.New(layoutName)
	if err != nil {
		return err
	}

	measurements, err := pr.ReadFile(input)
	if err != nil {
		return err
	}

	values := make(map[ctGroup][]float64)
	undetermined := make(map[ctGroup]int)
	var allCts []float64

	for _, m := range measurements {
		key := ctGroup{Sample: m.SampleName, Group: m.Group}

		if !m.Ct.Valid {
			undetermined[key]++

			// Make sure all-undetermined groups still appear in the
			// output table.
			if _, seen := values[key]; !seen {
				values[key] = nil
			}
			continue
		}

		values[key] = append(values[key], m.Ct.Float64)
		allCts = append(allCts, m.Ct.Float64)
	}

	keys := make([]ctGroup, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Sample != keys[j].Sample {
			return keys[i].Sample < keys[j].Sample
		}
		return keys[i].Group < keys[j].Group
	})

	fmt.Println(strings.Join([]string{
		"sample",
		"primer_group",
		"n",
		"undetermined",
		"mean",
		"sd",
		"median",
		"min",
		"max"},
		"\t"))

	for _, key := range keys {
		output := []string{key.Sample, key.Group.String(),
			fmt.Sprintf("%d", len(values[key])),
			fmt.Sprintf("%d", undetermined[key]),
		}

		data := stats.LoadRawData(values[key])
		for _, f := range []func() (float64, error){data.Mean, data.StandardDeviation, data.Median, data.Min, data.Max} {
			fl, err := f()
			if err != nil {
				output = append(output, "N/A")
				continue
			}
			output = append(output, fmt.Sprintf("%.3f", fl))
		}

		fmt.Println(strings.Join(output, "\t"))
	}

	if showHist && len(allCts) > 0 {
		hist := histogram.Hist(bins, allCts)
		if err := histogram.Fprint(os.Stdout, hist, histogram.Linear(40)); err != nil {
			return err
		}
	}

	return nil
}

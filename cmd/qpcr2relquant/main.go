// qpcr2relquant consumes a thermocycler CSV export and emits
// per-treatment relative concentrations computed with the
// delta-delta-Ct method.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/quantbio/qpcrmisc/ddct"
	"github.com/quantbio/qpcrmisc/platecsv"
)

func main() {
	var input, layoutName, control, delimiter, plotPath string
	var efficiency, maxReplicateSD float64

	flag.StringVar(&input, "file", "", "Delimited file with columns: Well, Sample Name, Primer, Ct")
	flag.StringVar(&layoutName, "layout", "generic", "Input layout. One of: "+platecsv.LayoutNames())
	flag.StringVar(&control, "control", "", "Treatment label to use as the baseline (e.g., Control)")
	flag.StringVar(&delimiter, "delimiter", ddct.DefaultDelimiter, "Delimiter between treatment and replicate within a sample name")
	flag.Float64Var(&efficiency, "efficiency", ddct.DefaultEfficiency, "Per-cycle amplification factor; must exceed 1")
	flag.Float64Var(&maxReplicateSD, "max-replicate-sd", 0.5, "Flag replicate groups whose Ct standard deviation exceeds this; 0 disables")
	flag.StringVar(&plotPath, "plot", "", "If set, render per-treatment relative concentrations to this PNG")

	flag.Parse()

	if input == "" || control == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(input, layoutName, control, delimiter, plotPath, efficiency, maxReplicateSD); err != nil {
		log.Fatalln(err)
	}
}

func run(input, layoutName, control, delimiter, plotPath string, efficiency, maxReplicateSD float64) error {
	pr, err := platecsv.New(layoutName)
	if err != nil {
		return err
	}

	measurements, err := pr.ReadFile(input)
	if err != nil {
		return err
	}
	log.Println("Read", len(measurements), "measurements from", input)

	result, err := ddct.Compute(measurements, ddct.Options{
		ControlLabel:   control,
		Efficiency:     efficiency,
		Delimiter:      delimiter,
		MaxReplicateSD: maxReplicateSD,
	})
	if err != nil {
		return err
	}

	logWarnings(result.Warnings)
	log.Printf("Baseline delta-Ct for %q: %f\n", control, result.Baseline)

	fmt.Println(strings.Join([]string{
		"treatment",
		"n",
		"mean_rel_conc",
		"rel_concs"},
		"\t"))

	for _, summary := range result.Summaries {
		concs := make([]string, 0, len(summary.Replicates))
		for _, r := range summary.Replicates {
			concs = append(concs, strconv.FormatFloat(r.RelConc, 'f', 6, 64))
		}

		fmt.Printf("%s\t%d\t%f\t%s\n",
			summary.Treatment,
			len(summary.Replicates),
			summary.MeanRelConc,
			strings.Join(concs, ","),
		)
	}

	if plotPath != "" {
		if err := plotSummaries(plotPath, result.Summaries); err != nil {
			return err
		}
		log.Println("Wrote plot to", plotPath)
	}

	return nil
}

func logWarnings(w ddct.Warnings) {
	if w.Count() == 0 {
		return
	}

	if len(w.MalformedIdentities) > 0 {
		log.Println(len(w.MalformedIdentities), "sample names failed to split into treatment and replicate:", strings.Join(w.MalformedIdentities, ", "))
	}
	if len(w.Unpaired) > 0 {
		log.Println(len(w.Unpaired), "samples were present in only one primer group and were dropped:", strings.Join(w.Unpaired, ", "))
	}
	if len(w.UndeterminedGroups) > 0 {
		log.Println(len(w.UndeterminedGroups), "replicate groups contained undetermined Ct readings:", strings.Join(w.UndeterminedGroups, ", "))
	}
	if len(w.HighReplicateSD) > 0 {
		log.Println(len(w.HighReplicateSD), "replicate groups exceeded the replicate-SD threshold:", strings.Join(w.HighReplicateSD, ", "))
	}
	if len(w.DeltaCtOutliers) > 0 {
		log.Println(len(w.DeltaCtOutliers), "samples have outlying delta-Ct values:", strings.Join(w.DeltaCtOutliers, ", "))
	}
}

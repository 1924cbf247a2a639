package main

import (
	"bytes"
	"os"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/quantbio/qpcrmisc/ddct"
)

// plotSummaries renders the per-replicate relative concentrations as
// points over treatment index, with a line through the treatment
// means. Treatment index i corresponds to Summaries[i], which is
// ordered by treatment label.
func plotSummaries(filename string, summaries []ddct.TreatmentSummary) error {
	meanX := make([]float64, 0, len(summaries))
	meanY := make([]float64, 0, len(summaries))

	var pointX, pointY []float64

	for i, summary := range summaries {
		meanX = append(meanX, float64(i))
		meanY = append(meanY, summary.MeanRelConc)

		for _, conc := range summary.RelConcs() {
			pointX = append(pointX, float64(i))
			pointY = append(pointY, conc)
		}
	}

	graph := chart.Chart{
		Width:  512,
		Height: 256,
		XAxis: chart.XAxis{
			Style: chart.Hidden(),
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "replicates",
				XValues: pointX,
				YValues: pointY,
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotWidth:    4,
				},
			},
			chart.ContinuousSeries{
				Name:    "treatment means",
				XValues: meanX,
				YValues: meanY,
			},
		},
	}

	// Render to a byte buffer
	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return err
	}

	outFile, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer outFile.Close()

	if _, err := buffer.WriteTo(outFile); err != nil {
		return err
	}

	return nil
}

// Package exporter renders the prediction change table as a downloadable
// delimited-text file.
package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"NickelSentinel/internal/model"
)

var csvHeader = []string{"Date", "Predicted Price", "Change USD", "Change %"}

// WritePredictionsCSV writes one row per prediction point.
func WritePredictionsCSV(w io.Writer, changes []model.ChangeRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, c := range changes {
		row := []string{
			c.Date,
			strconv.FormatFloat(c.Price, 'f', -1, 64),
			strconv.FormatFloat(c.ChangeUSD, 'f', -1, 64),
			fmt.Sprintf("%.2f%%", c.ChangePercent),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Filename returns the download name stamped with the given date.
func Filename(now time.Time) string {
	return fmt.Sprintf("nickel_predictions_%s.csv", now.Format("2006-01-02"))
}

package event

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/eventdesk/event-manager/pkg/model"
)

// WriteCSV serializes events to the export format: a fixed header followed by
// one row per event. Free-text fields are always double quoted with embedded
// quotes doubled, dates and times are written bare.
func WriteCSV(w io.Writer, events []model.Event) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintln(bw, "Title,Date,Start Time,End Time,Location,Category,Phone"); err != nil {
		return err
	}

	for _, e := range events {
		_, err := fmt.Fprintf(bw, "%s,%s,%s,%s,%s,%s,%s\n",
			escapeCSV(e.Title),
			e.EventDate,
			e.StartTime,
			e.EndTime,
			escapeCSV(e.Location),
			escapeCSV(e.Category),
			escapeCSV(e.ContactPhone),
		)
		if err != nil {
			return err
		}
	}

	return bw.Flush()
}

func escapeCSV(text string) string {
	return `"` + strings.ReplaceAll(text, `"`, `""`) + `"`
}

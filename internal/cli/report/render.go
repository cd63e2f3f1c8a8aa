package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"preport/internal/domain/pullrequest"

	"github.com/gosuri/uilive"
	"github.com/gosuri/uitable"
)

const closedDateLayout = "2006-01-02"

func render(w io.Writer, format string, prs []*pullrequest.Entity) error {
	switch format {
	case "csv":
		return renderCSV(w, prs)
	default:
		return renderTable(w, prs)
	}
}

func renderTable(w io.Writer, prs []*pullrequest.Entity) error {
	table := uitable.New()
	table.MaxColWidth = 70
	table.AddRow("#", "TITLE", "CLOSED", "DEST", "URL")
	table.AddRow("-", "-----", "------", "----", "---")

	for _, v := range prs {
		table.AddRow(
			v.ID,
			v.Title,
			v.Closed.UTC().Format(closedDateLayout),
			v.Destination,
			v.URL,
		)
	}

	_, err := fmt.Fprintln(w, table.String())
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "\nTotal: %d\n", len(prs))
	return err
}

func renderCSV(w io.Writer, prs []*pullrequest.Entity) error {
	cw := csv.NewWriter(w)

	err := cw.Write([]string{"id", "title", "closed", "destination", "url"})
	if err != nil {
		return err
	}

	for _, v := range prs {
		err := cw.Write([]string{
			string(v.ID),
			v.Title,
			v.Closed.UTC().Format(closedDateLayout),
			v.Destination,
			v.URL,
		})
		if err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// progressRenderer repaints a single status line while pages are being
// scanned. It writes to stderr; stdout carries only the report.
type progressRenderer struct {
	w *uilive.Writer
}

func newProgressRenderer() *progressRenderer {
	w := uilive.New()
	w.Out = os.Stderr
	w.Start()

	return &progressRenderer{w: w}
}

func (p *progressRenderer) PageScanned(offset, fetched, matched int) {
	fmt.Fprintf(p.w, "Scanned %d pull requests, %d in range...\n", offset+fetched, matched)
}

func (p *progressRenderer) Stop() {
	p.w.Stop()
}

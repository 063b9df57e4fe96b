package canaries

import (
	"io"

	"github.com/dustin/go-humanize"
	"github.com/kataras/tablewriter"
	"github.com/lensesio/tableprinter"
)

type summaryRow struct {
	Name      string `header:"name"`
	Message   string `header:"message"`
	Signature string `header:"signature"`
	Created   string `header:"created"`
}

// PrintSummary writes a table of the collected messages, in report order.
func PrintSummary(w io.Writer, msgs []SignedMessage) {
	rows := make([]summaryRow, 0, len(msgs))
	for _, msg := range msgs {
		rows = append(rows, summaryRow{
			Name:      msg.Name,
			Message:   humanize.Bytes(uint64(len(msg.Message))),
			Signature: humanize.Bytes(uint64(len(msg.Signature))),
			Created:   humanize.Time(msg.Created),
		})
	}

	printer := tableprinter.New(w)
	printer.BorderTop, printer.BorderBottom, printer.BorderLeft, printer.BorderRight = true, true, true, true
	printer.CenterSeparator = "│"
	printer.ColumnSeparator = "│"
	printer.RowSeparator = "─"
	printer.HeaderBgColor = tablewriter.BgBlackColor
	printer.HeaderFgColor = tablewriter.FgGreenColor
	printer.Print(rows)
}

package transcript

import (
	"fmt"
	"io"
	"strings"

	"github.com/jevan001/Turbomate-Ai/model"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// WriteText prints the conversation one message per line, then the history
// as a table.
func WriteText(w io.Writer, res Result) error {
	for _, msg := range res.Messages {
		label := "bot"
		if msg.IsUser() {
			label = "you"
		}
		text := strings.ReplaceAll(msg.Text, "\n", "\n     ")
		if _, err := fmt.Fprintf(w, "%-4s %s\n", label+":", text); err != nil {
			return err
		}
	}

	if len(res.History) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Title", "Active"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.AppendBulk(lo.Map(res.History, func(e model.HistoryEntry, i int) []string {
		active := ""
		if e.Active {
			active = "*"
		}
		return []string{fmt.Sprint(i + 1), e.Title, active}
	}))
	table.Render()
	return nil
}

// WriteYAML encodes the whole result.
func WriteYAML(w io.Writer, res Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

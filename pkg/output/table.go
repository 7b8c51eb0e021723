package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/kazuma-desu/lf/pkg/models"
)

// renderStyledTable renders a lipgloss table with rounded borders and
// alternating row colors. Header labels are upper-cased; cell text uses the
// same formatting rule as the TSV path.
func (c *Context) renderStyledTable(rows []models.Record, columns []string) {
	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = strings.ToUpper(col)
	}

	data := make([][]string, len(rows))
	for i, rec := range rows {
		cells := make([]string, len(columns))
		for j, col := range columns {
			cells[j] = models.FormatValue(rec[col])
		}
		data[i] = cells
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tableBorderStyle).
		Headers(headers...).
		Rows(data...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			// Header row (row 0 in lipgloss table is the header)
			if row == 0 {
				return tableHeaderStyle
			}
			if row%2 == 0 {
				return tableEvenRowStyle
			}
			return tableOddRowStyle
		})

	fmt.Fprintln(c.stdout, t.Render())
}

// Package report renders the operator report as markdown.
package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"treasury/internal/currency"
	"treasury/internal/models"
	"treasury/internal/services"
)

// maxHistoryRows bounds the reconciliation and daily tables.
const maxHistoryRows = 14

// Input is everything the report shows.
type Input struct {
	Currency  string
	Dashboard *services.Dashboard
	Days      []services.DailySummary
	Logs      []models.DailyLog
}

// Markdown renders in as a markdown document.
func Markdown(in Input) string {
	var b strings.Builder
	d := in.Dashboard

	fmt.Fprintf(&b, "# Treasury report %s\n\n", d.Date)

	b.WriteString("## Balances\n\n")
	b.WriteString("| | Amount |\n|---|---:|\n")
	fmt.Fprintf(&b, "| Current balance | %s |\n", d.CurrentBalance.Display)
	fmt.Fprintf(&b, "| Total income | %s |\n", d.TotalIncome.Display)
	fmt.Fprintf(&b, "| Total expense | %s |\n", d.TotalExpense.Display)
	fmt.Fprintf(&b, "| Today's net | %s |\n\n", d.TodayNet.Display)

	b.WriteString("## Recent transactions\n\n")
	if len(d.RecentTransactions) == 0 {
		b.WriteString("_No transactions recorded._\n\n")
	} else {
		b.WriteString("| Date | Type | Description | Amount |\n|---|---|---|---:|\n")
		for _, tx := range d.RecentTransactions {
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
				tx.Date.Format("2006-01-02 15:04"),
				tx.Type,
				escapeCell(tx.Description),
				currency.Format(tx.Signed(), in.Currency),
			)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Daily totals\n\n")
	if len(in.Days) == 0 {
		b.WriteString("_No activity._\n\n")
	} else {
		b.WriteString("| Date | Income | Expense | Net | Count |\n|---|---:|---:|---:|---:|\n")
		for _, day := range head(in.Days) {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %d |\n",
				day.Date,
				currency.Format(day.Income, in.Currency),
				currency.Format(day.Expense, in.Currency),
				currency.Format(day.Net, in.Currency),
				day.Count,
			)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Reconciliation history\n\n")
	if len(in.Logs) == 0 {
		b.WriteString("_No reconciliation recorded._\n")
		return b.String()
	}
	b.WriteString("| Date | System | Actual | Difference | Notes |\n|---|---:|---:|---:|---|\n")
	for _, log := range head(in.Logs) {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			log.Date,
			currency.Format(log.SystemBalance, in.Currency),
			currency.Format(log.ActualBalance, in.Currency),
			currency.Format(log.Difference, in.Currency),
			escapeCell(log.Notes),
		)
	}
	return b.String()
}

var htmlRenderer = goldmark.New(goldmark.WithExtensions(extension.GFM))

// HTML converts a markdown report to HTML, tables included.
func HTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := htmlRenderer.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to convert report: %w", err)
	}
	return buf.String(), nil
}

func head[T any](rows []T) []T {
	if len(rows) > maxHistoryRows {
		return rows[:maxHistoryRows]
	}
	return rows
}

var cellReplacer = strings.NewReplacer("|", "\\|", "\n", " ", "\r", "")

func escapeCell(s string) string {
	return cellReplacer.Replace(s)
}

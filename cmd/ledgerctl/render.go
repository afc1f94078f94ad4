package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"

	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/money"
	"github.com/mmynk/splitledger/internal/settlement"
)

// printMarkdown renders md for the terminal, or prints it raw when plain is
// set or rendering fails.
func printMarkdown(w io.Writer, md string, plain bool) {
	if !plain {
		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
		if err == nil {
			if out, err := r.Render(md); err == nil {
				fmt.Fprint(w, out)
				return
			}
		}
	}
	fmt.Fprint(w, md)
}

// cell escapes text for a markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	s = strings.ReplaceAll(s, "\n", " ")
	if s == "" {
		return "-"
	}
	return s
}

func formatTime(unix int64) string {
	if unix == 0 {
		return "-"
	}
	return time.Unix(unix, 0).UTC().Format("2006-01-02 15:04")
}

// ledgerCheck is the verification outcome for one ledger.
type ledgerCheck struct {
	Ledger *models.Ledger
	Result settlement.Verification
}

func verifyMarkdown(checks []ledgerCheck, cur money.Currency) string {
	var b strings.Builder
	b.WriteString("# Balance verification\n\n")
	if len(checks) == 0 {
		b.WriteString("No ledgers.\n")
		return b.String()
	}

	b.WriteString("| Ledger | Stored | Computed | Drift | Result |\n")
	b.WriteString("|---|---:|---:|---:|---|\n")
	failed := 0
	for _, c := range checks {
		result := "ok"
		if !c.Result.OK() {
			result = "**mismatch**"
			failed++
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			cell(c.Ledger.Name),
			cur.Format(c.Result.Stored),
			cur.Format(c.Result.Computed),
			cur.Format(c.Result.Drift()),
			result,
		)
	}
	fmt.Fprintf(&b, "\n%d of %d ledgers match their transactions.\n", len(checks)-failed, len(checks))
	return b.String()
}

func statementMarkdown(ledger *models.Ledger, txs []*models.Transaction, cur money.Currency) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", ledger.Name)
	if ledger.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", ledger.Description)
	}
	fmt.Fprintf(&b, "Balance: **%s**\n\n", cur.Format(ledger.Amount))

	if len(txs) == 0 {
		b.WriteString("No transactions.\n")
		return b.String()
	}

	b.WriteString("| Date | Amount | Correspondent | Project | Description |\n")
	b.WriteString("|---|---:|---|---|---|\n")
	for _, t := range txs {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			formatTime(t.CreatedAt),
			cur.Format(t.Amount),
			cell(t.CorrespondentName),
			cell(t.ProjectName),
			cell(t.Description),
		)
	}
	return b.String()
}

func payoutMarkdown(project *models.Project, s settlement.PayoutSuggestion, cur money.Currency) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Payout for %s\n\n", project.Name)
	fmt.Fprintf(&b, "Amount per participant: %s\n\n", cur.Format(project.Amount))
	if project.PaidOut() {
		fmt.Fprintf(&b, "Already paid out on %s.\n\n", formatTime(project.PaidOutAt))
	}
	fmt.Fprintf(&b, "Suggested payout: **%s** for %d paying participants.\n", cur.Format(s.Amount), len(s.Eligible))

	if len(s.Eligible) == 0 {
		return b.String()
	}
	b.WriteString("\n| Participant | Paid | Paid on |\n")
	b.WriteString("|---|---:|---|\n")
	for _, p := range s.Eligible {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", cell(p.Name), cur.Format(p.PaidAmount), formatTime(p.PaidAt))
	}
	return b.String()
}

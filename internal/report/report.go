// Package report renders force analysis results for the terminal.
package report

import (
	"fmt"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"aerocalc/internal/aero"
	"aerocalc/internal/aero/barrowman"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	totalStyle = lipgloss.NewStyle().Bold(true)
)

// Analysis renders the per-component force table with the aggregate row
// last.
func Analysis(a *barrowman.Analysis, cond *aero.FlightConditions) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(fmt.Sprintf(
		"Force analysis  (Mach %.2f, AOA %.1f deg)",
		cond.Mach, cond.AOA*180/math.Pi)))
	sb.WriteString("\n\n")

	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "COMPONENT\tCP (m)\tCNa\tCN\tCm\tCDfric\tCDpres\tCDbase\tCD\tCaxial")

	for _, comp := range a.Order {
		f := a.Forces[comp]
		fmt.Fprintf(w, "%s\t%.4f\t%.4f\t%.4f\t%.4f\t%s\t%s\t%s\t%s\t%s\n",
			comp.Name(), f.CP.X, f.CNa, f.CN, f.Cm,
			num(f.FrictionCD), num(f.PressureCD), num(f.BaseCD),
			num(f.CD), num(f.Caxial))
	}

	t := a.Total
	fmt.Fprintf(w, "%s\t%.4f\t%.4f\t%.4f\t%.4f\t%s\t%s\t%s\t%s\t%s\n",
		totalStyle.Render("TOTAL"), t.CP.X, t.CNa, t.CN, t.Cm,
		num(t.FrictionCD), num(t.PressureCD), num(t.BaseCD),
		num(t.CD), num(t.Caxial))
	w.Flush()

	return sb.String()
}

// Stability renders the CP/CG summary with the static margin in calibers.
func Stability(cp, cg aero.Coordinate, cond *aero.FlightConditions) string {
	margin := (cp.X - cg.X) / cond.RefLength
	return fmt.Sprintf("CP: %.4f m\nCG: %.4f m\nStatic margin: %.2f cal\n",
		cp.X, cg.X, margin)
}

// Warnings renders the warning list, empty string when there are none.
func Warnings(ws *aero.WarningSet) string {
	if ws.Len() == 0 {
		return ""
	}
	var sb strings.Builder
	for _, warning := range ws.All() {
		sb.WriteString(warnStyle.Render("warning: " + warning.Text))
		sb.WriteString("\n")
	}
	return sb.String()
}

// num formats a coefficient, showing unset (NaN) values as a dash.
func num(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf("%.5f", v)
}

package renderer

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/etnz/metals"
)

// profitMarkdownTemplate lays out the daily valuation walk as one table,
// most recent day last so the bottom line is today's standing.
const profitMarkdownTemplate = `# Profit & Loss

| Date | Gold Oz | Gold Avg | Gold Spot | Gold PnL | Silver Oz | Silver Avg | Silver Spot | Silver PnL | Portfolio PnL |
|:---|---:|---:|---:|---:|---:|---:|---:|---:|---:|
{{- range .Rows }}
| {{ .Date }} | {{ .GoldOz }} | {{ .GoldAvgCost }} | {{ .GoldSpot }} | {{ .GoldPnL }} | {{ .SilverOz }} | {{ .SilverAvgCost }} | {{ .SilverSpot }} | {{ .SilverPnL }} | {{ .PortfolioPnL }} |
{{- end }}
{{ if .Rows }}
Latest portfolio PnL: **{{ .Latest }}**
{{- end }}
`

// profitRowView is a ProfitRow with all numbers already formatted.
type profitRowView struct {
	Date          string
	GoldOz        string
	GoldAvgCost   string
	GoldSpot      string
	GoldPnL       string
	SilverOz      string
	SilverAvgCost string
	SilverSpot    string
	SilverPnL     string
	PortfolioPnL  string
}

// ProfitMarkdown renders the valuation series to a markdown string.
func ProfitMarkdown(rows []metals.ProfitRow, currency string) string {
	views := make([]profitRowView, 0, len(rows))
	for _, r := range rows {
		views = append(views, profitRowView{
			Date:          r.Date.String(),
			GoldOz:        fmtOz(r.GoldOz),
			GoldAvgCost:   fmtMoney(r.GoldAvgCost, currency),
			GoldSpot:      fmtMoney(r.GoldSpot, currency),
			GoldPnL:       fmtPnL(r.GoldPnL, currency),
			SilverOz:      fmtOz(r.SilverOz),
			SilverAvgCost: fmtMoney(r.SilverAvgCost, currency),
			SilverSpot:    fmtMoney(r.SilverSpot, currency),
			SilverPnL:     fmtPnL(r.SilverPnL, currency),
			PortfolioPnL:  fmtPnL(r.PortfolioPnL, currency),
		})
	}

	latest := ""
	if len(rows) > 0 {
		latest = fmtPnL(rows[len(rows)-1].PortfolioPnL, currency)
	}

	data := struct {
		Rows   []profitRowView
		Latest string
	}{Rows: views, Latest: latest}

	tmpl := template.Must(template.New("profit").Parse(profitMarkdownTemplate))
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("Error executing template: %v", err)
	}
	return b.String()
}

// extractionMarkdownTemplate reports what was parsed out of a batch of
// order messages.
const extractionMarkdownTemplate = `# Extracted Orders

| Message | Order | Gold Oz | Silver Oz | Subject |
|:---|:---|---:|---:|:---|
{{- range . }}
| {{ .MessageID }} | {{ if .OrderID }}{{ .OrderID }}{{ else }}?{{ end }} | {{ printf "%.4f" .GoldOz }} | {{ printf "%.4f" .SilverOz }} | {{ .Subject }} |
{{- end }}
`

// ExtractionMarkdown renders a batch of order extractions to markdown.
func ExtractionMarkdown(extractions []metals.OrderExtraction) string {
	tmpl := template.Must(template.New("extraction").Parse(extractionMarkdownTemplate))
	var b strings.Builder
	if err := tmpl.Execute(&b, extractions); err != nil {
		return fmt.Sprintf("Error executing template: %v", err)
	}
	return b.String()
}

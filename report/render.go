package report

import (
	"fmt"
	"html/template"
	"io"
)

var funcs = template.FuncMap{
	"mib": func(v float64) string {
		return fmt.Sprintf("%.2f", v)
	},
	"gib": func(v uint64) string {
		return fmt.Sprintf("%.2f", float64(v)/(1024*1024*1024))
	},
	"pct": func(v float64) string {
		return fmt.Sprintf("%.1f%%", v)
	},
}

var page = template.Must(template.New("report").Funcs(funcs).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Media size by date</title>
</head>
<body style="font-family: sans-serif; margin: 2em;">
<h1 style="font-size: 1.4em;">Media size by date</h1>
<table style="border-collapse: collapse; text-align: right;">
<tr style="background: #eee;">
<th style="padding: 4px 12px; text-align: left;">Date</th>
<th style="padding: 4px 12px;">Video (MiB)</th>
<th style="padding: 4px 12px;">Image (MiB)</th>
<th style="padding: 4px 12px;">Audio (MiB)</th>
<th style="padding: 4px 12px;">Total (MiB)</th>
</tr>
{{- range .Rows}}
<tr>
<td style="padding: 4px 12px; text-align: left;">{{.Date}}</td>
<td style="padding: 4px 12px;">{{mib .Video}}</td>
<td style="padding: 4px 12px;">{{mib .Image}}</td>
<td style="padding: 4px 12px;">{{mib .Audio}}</td>
<td style="padding: 4px 12px;">{{mib .Total}}</td>
</tr>
{{- end}}
<tr style="font-weight: bold; border-top: 2px solid #333;">
<td style="padding: 4px 12px; text-align: left;">Total</td>
<td style="padding: 4px 12px;">{{mib .Totals.Video}}</td>
<td style="padding: 4px 12px;">{{mib .Totals.Image}}</td>
<td style="padding: 4px 12px;">{{mib .Totals.Audio}}</td>
<td style="padding: 4px 12px;">{{mib .Totals.Total}}</td>
</tr>
</table>
{{- if .Disks}}
<h2 style="font-size: 1.2em; margin-top: 2em;">Disk usage</h2>
<table style="border-collapse: collapse; text-align: right;">
<tr style="background: #eee;">
<th style="padding: 4px 12px; text-align: left;">Path</th>
<th style="padding: 4px 12px; text-align: left;">Filesystem</th>
<th style="padding: 4px 12px;">Total (GiB)</th>
<th style="padding: 4px 12px;">Used (GiB)</th>
<th style="padding: 4px 12px;">Free (GiB)</th>
<th style="padding: 4px 12px;">Used</th>
</tr>
{{- range .Disks}}
<tr>
<td style="padding: 4px 12px; text-align: left;">{{.Path}}</td>
<td style="padding: 4px 12px; text-align: left;">{{.Filesystem}}</td>
<td style="padding: 4px 12px;">{{gib .Total}}</td>
<td style="padding: 4px 12px;">{{gib .Used}}</td>
<td style="padding: 4px 12px;">{{gib .Free}}</td>
<td style="padding: 4px 12px;">{{pct .UsedPercent}}</td>
</tr>
{{- end}}
</table>
{{- end}}
</body>
</html>
`))

// Render writes r as a standalone HTML page.
func Render(w io.Writer, r *Report) error {
	return page.Execute(w, r)
}

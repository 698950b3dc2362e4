// Package report aggregates scanned media sizes by day and category and
// renders the result as HTML.
package report

import (
	"iter"
	"sort"

	"media-server/media"
	"media-server/scan"
)

const MiB = 1024 * 1024

// Row is one day of summed sizes, in MiB.
type Row struct {
	Date  string  `json:"date"`
	Video float64 `json:"video"`
	Image float64 `json:"image"`
	Audio float64 `json:"audio"`
	Total float64 `json:"total"`
}

// Totals are the column sums over every Row.
type Totals struct {
	Video float64 `json:"video"`
	Image float64 `json:"image"`
	Audio float64 `json:"audio"`
	Total float64 `json:"total"`
}

type Report struct {
	Rows   []Row       `json:"rows"`
	Totals Totals      `json:"totals"`
	Files  int         `json:"files"`
	Disks  []DiskUsage `json:"disks,omitempty"`
}

type dayKey struct {
	date     string
	category media.Category
}

// Aggregate classifies records, drops the unknown ones and sums their sizes
// per day and category. Rows come out newest day first.
func Aggregate(records iter.Seq[scan.FileRecord]) *Report {
	bytes := make(map[dayKey]int64)
	dates := make(map[string]struct{})
	files := 0

	for rec := range records {
		c, ok := media.Classify(rec.Extension)
		if !ok {
			continue
		}
		date := rec.Date()
		bytes[dayKey{date, c}] += rec.Size
		dates[date] = struct{}{}
		files++
	}

	rows := make([]Row, 0, len(dates))
	for date := range dates {
		row := Row{
			Date:  date,
			Video: toMiB(bytes[dayKey{date, media.Video}]),
			Image: toMiB(bytes[dayKey{date, media.Image}]),
			Audio: toMiB(bytes[dayKey{date, media.Audio}]),
		}
		row.Total = row.Video + row.Image + row.Audio
		rows = append(rows, row)
	}

	// DateLayout sorts lexically in date order
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Date > rows[j].Date
	})

	return &Report{
		Rows:   rows,
		Totals: sumRows(rows),
		Files:  files,
	}
}

func sumRows(rows []Row) Totals {
	var t Totals
	for _, r := range rows {
		t.Video += r.Video
		t.Image += r.Image
		t.Audio += r.Audio
		t.Total += r.Total
	}
	return t
}

func toMiB(n int64) float64 {
	return float64(n) / MiB
}

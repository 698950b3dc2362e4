package report

import (
	"context"
	"slices"

	"media-server/scan"
)

// Builder scans a fixed set of roots and aggregates them into a Report.
type Builder struct {
	Scanner   *scan.Scanner
	Roots     []string
	DiskUsage bool
}

func NewBuilder(scanner *scan.Scanner, diskUsage bool, roots ...string) *Builder {
	return &Builder{
		Scanner:   scanner,
		Roots:     uniqueRoots(roots),
		DiskUsage: diskUsage,
	}
}

// Build runs a fresh scan. It only fails when ctx is done.
func (b *Builder) Build(ctx context.Context) (*Report, error) {
	r := Aggregate(b.Scanner.Records(ctx, b.Roots...))
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if b.DiskUsage {
		r.Disks = DiskUsageFor(b.Roots...)
	}
	return r, nil
}

// uniqueRoots drops repeated roots so a shared video/audio directory is
// scanned once.
func uniqueRoots(roots []string) []string {
	var out []string
	for _, r := range roots {
		if !slices.Contains(out, r) {
			out = append(out, r)
		}
	}
	return out
}

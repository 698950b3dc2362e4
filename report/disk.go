package report

import (
	"log"

	"github.com/shirou/gopsutil/v3/disk"
)

// DiskUsage is the capacity of the filesystem holding one scanned root.
type DiskUsage struct {
	Path        string  `json:"path"`
	Filesystem  string  `json:"filesystem"`
	Total       uint64  `json:"total"`
	Used        uint64  `json:"used"`
	Free        uint64  `json:"free"`
	UsedPercent float64 `json:"usedPercent"`
}

// DiskUsageFor returns usage for each root it can stat; failures are logged
// and left out.
func DiskUsageFor(roots ...string) []DiskUsage {
	var usages []DiskUsage
	for _, root := range roots {
		usage, err := disk.Usage(root)
		if err != nil {
			log.Printf("Warning: Could not get disk usage for %s: %v", root, err)
			continue
		}
		usages = append(usages, DiskUsage{
			Path:        root,
			Filesystem:  usage.Fstype,
			Total:       usage.Total,
			Used:        usage.Used,
			Free:        usage.Free,
			UsedPercent: usage.UsedPercent,
		})
	}
	return usages
}

package scan

import (
	"io/fs"
	"path/filepath"
	"strings"
	"time"
)

// DateLayout is the calendar date format used to group records.
const DateLayout = "2006-01-02"

// FileRecord describes one regular file found during a scan
type FileRecord struct {
	Path      string    `json:"path"`
	Size      int64     `json:"size"`
	ModTime   time.Time `json:"modTime"`
	Extension string    `json:"ext"` // lowercased, with leading dot
}

func newFileRecord(dir string, info fs.FileInfo) FileRecord {
	return FileRecord{
		Path:      filepath.Join(dir, info.Name()),
		Size:      info.Size(),
		ModTime:   info.ModTime(),
		Extension: Ext(info.Name()),
	}
}

// Ext returns the lowercased extension of name including the dot
func Ext(name string) string {
	return strings.ToLower(filepath.Ext(name))
}

// Date returns the modification date in the host's local time zone.
func (r FileRecord) Date() string {
	return r.ModTime.In(time.Local).Format(DateLayout)
}

func (r FileRecord) Name() string {
	return filepath.Base(r.Path)
}

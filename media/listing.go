package media

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

// Listing names one directory and the categories whose files it exposes.
type Listing struct {
	Name       string
	Dir        string
	Categories []Category
}

// List returns the names of the matching files directly inside Dir, in the
// order the directory yields them. Subdirectories are not descended.
func (l Listing) List() ([]string, error) {
	entries, err := os.ReadDir(l.Dir)
	if err != nil {
		return nil, err
	}

	files := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if l.Matches(entry.Name()) {
			files = append(files, entry.Name())
		}
	}
	return files, nil
}

// Matches reports whether name has an extension from one of the listing's categories.
func (l Listing) Matches(name string) bool {
	c, ok := Classify(filepath.Ext(name))
	return ok && slices.Contains(l.Categories, c)
}

// Listings returns the fixed listings served by the API, keyed by name.
func Listings(videoDir, audioDir string) map[string]Listing {
	return map[string]Listing{
		"files":  {Name: "files", Dir: videoDir, Categories: []Category{Video, Audio}},
		"images": {Name: "images", Dir: videoDir, Categories: []Category{Image}},
		"audio":  {Name: "audio", Dir: audioDir, Categories: []Category{Audio}},
	}
}

func (l Listing) String() string {
	return fmt.Sprintf("%s(%s)", l.Name, l.Dir)
}

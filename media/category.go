// Package media classifies files by extension, lists media directories and
// resolves streaming requests inside the media directory.
package media

import (
	"strings"
)

type Category string

const (
	Video Category = "video"
	Image Category = "image"
	Audio Category = "audio"
)

// Categories in report column order.
var Categories = []Category{Video, Image, Audio}

var extensions = map[Category][]string{
	Video: {".mp4", ".mkv", ".avi"},
	Image: {".jpg", ".png", ".jpeg"},
	Audio: {".mp3", ".opus", ".ogg", ".wav"},
}

var byExtension = func() map[string]Category {
	m := make(map[string]Category)
	for c, exts := range extensions {
		for _, ext := range exts {
			m[ext] = c
		}
	}
	return m
}()

// Classify maps an extension to its category. The leading dot is optional and
// case is ignored; unknown extensions report false.
func Classify(ext string) (Category, bool) {
	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	c, ok := byExtension[ext]
	return c, ok
}

// Extensions returns a copy of the extensions belonging to c.
func Extensions(c Category) []string {
	return append([]string(nil), extensions[c]...)
}

func (c Category) String() string {
	return string(c)
}

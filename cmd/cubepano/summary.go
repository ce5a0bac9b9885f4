package main

import (
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/cubemap"
)

// summary collects run totals for the closing report line.
type summary struct {
	command string
	start   time.Time
	files   int
	faces   int
	pixels  int64
}

func (s *summary) addPixels(r *cubemap.Raster) {
	if r != nil {
		s.pixels += int64(r.Width()) * int64(r.Height())
	}
}

// print writes the summary with locale-aware digit grouping.
func (s *summary) print(w io.Writer) {
	p := message.NewPrinter(userLanguage())
	p.Fprintf(w, "%s: %d files, %d faces, %d pixels in %v\n",
		s.command, s.files, s.faces, s.pixels, time.Since(s.start).Round(time.Millisecond))
}

// userLanguage derives the output language from LC_ALL, LC_NUMERIC or LANG,
// falling back to English.
func userLanguage() language.Tag {
	for _, key := range []string{"LC_ALL", "LC_NUMERIC", "LANG"} {
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		v, _, _ = strings.Cut(v, ".")
		if tag, err := language.Parse(v); err == nil {
			return tag
		}
	}
	return language.English
}

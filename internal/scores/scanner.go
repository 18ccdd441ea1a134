package scores

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Span is one practiceable measure range found in a score folder.
type Span struct {
	Start int
	End   int
}

// Folder is the scan result for one song folder: the main score file plus
// every measure span it exports.
type Folder struct {
	Source   string
	Title    string
	MainFile string
	Spans    []Span
}

// Singles counts the single-measure spans; this is the song's measure total.
func (f *Folder) Singles() int {
	count := 0
	for _, span := range f.Spans {
		if span.Start == span.End {
			count++
		}
	}
	return count
}

var titleCaser = cases.Title(language.English)

// Scan walks a scores directory for song folders. A folder qualifies when it
// holds a main score file (a .musicxml or .mxl without a measure marker in
// its name) and at least one single-measure export. Folders without singles
// are skipped; a song needs per-measure files to be practiceable.
func Scan(dir string) ([]Folder, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read scores dir: %w", err)
	}

	var folders []Folder
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		folder, err := scanFolder(dir, entry.Name())
		if err != nil {
			return nil, err
		}
		if folder == nil {
			continue
		}
		folders = append(folders, *folder)
	}

	sort.Slice(folders, func(i, j int) bool { return folders[i].Source < folders[j].Source })
	return folders, nil
}

func scanFolder(dir, name string) (*Folder, error) {
	path := filepath.Join(dir, name)
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("read song folder %s: %w", name, err)
	}

	var mainFile string
	var spans []Span
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		fileName := entry.Name()
		ext := filepath.Ext(fileName)
		if ext != ".musicxml" && ext != ".mxl" {
			continue
		}
		if !isMeasureFile(fileName) {
			if mainFile == "" {
				mainFile = fileName
			}
			continue
		}
		// Measure exports are only recognized as .musicxml, matching the
		// per-measure output of the score splitter.
		if ext != ".musicxml" {
			continue
		}
		span, ok := parseSpan(fileName)
		if !ok {
			continue
		}
		spans = append(spans, span)
	}

	if mainFile == "" {
		return nil, nil
	}
	hasSingle := false
	for _, span := range spans {
		if span.Start == span.End {
			hasSingle = true
			break
		}
	}
	if !hasSingle {
		return nil, nil
	}

	sort.Slice(spans, func(i, j int) bool {
		if spans[i].Start != spans[j].Start {
			return spans[i].Start < spans[j].Start
		}
		return spans[i].End < spans[j].End
	})

	return &Folder{
		Source:   name,
		Title:    TitleFromSource(name),
		MainFile: mainFile,
		Spans:    spans,
	}, nil
}

// TitleFromSource derives a display title from a folder slug: dashes become
// spaces and each word is title-cased.
func TitleFromSource(source string) string {
	return titleCaser.String(strings.ReplaceAll(source, "-", " "))
}

func isMeasureFile(name string) bool {
	return strings.Contains(name, "measure_") || strings.Contains(name, "measures_")
}

// parseSpan reads the measure span from an export filename. Singles look
// like "*measure_7.musicxml", ranges like "*measures_3-5.musicxml".
func parseSpan(name string) (Span, bool) {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	if idx := strings.Index(base, "measures_"); idx >= 0 {
		rangePart := base[idx+len("measures_"):]
		parts := strings.SplitN(rangePart, "-", 2)
		if len(parts) != 2 {
			return Span{}, false
		}
		start, err1 := strconv.Atoi(parts[0])
		end, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil || start < 1 || end < start {
			return Span{}, false
		}
		return Span{Start: start, End: end}, true
	}
	if idx := strings.Index(base, "measure_"); idx >= 0 {
		measure, err := strconv.Atoi(base[idx+len("measure_"):])
		if err != nil || measure < 1 {
			return Span{}, false
		}
		return Span{Start: measure, End: measure}, true
	}
	return Span{}, false
}

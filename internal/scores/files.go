package scores

import (
	"fmt"
	"path/filepath"
	"strings"
)

// FileCandidates constructs the likely score filenames for one measure of a
// song. The heuristic takes the song's source file, strips the extension,
// and produces "{dir}/{base}_measure_{n}.musicxml" with an ".mxl" fallback.
func FileCandidates(sourceFile string, measure int) []string {
	dir := filepath.Dir(sourceFile)
	base := strings.TrimSuffix(filepath.Base(sourceFile), filepath.Ext(sourceFile))
	prefix := ""
	if dir != "" && dir != "." {
		prefix = dir + "/"
	}
	return []string{
		fmt.Sprintf("%s%s_measure_%d.musicxml", prefix, base, measure),
		fmt.Sprintf("%s%s_measure_%d.mxl", prefix, base, measure),
	}
}

// SongFragment extracts the portion of a client-supplied filename usable for
// looking the song up: the basename with its extension and any
// "_measure_..." suffix removed.
func SongFragment(filename string) string {
	base := filepath.Base(filename)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if idx := strings.Index(base, "_measure_"); idx >= 0 {
		base = base[:idx]
	}
	return base
}

// Package sink persists transcripts as flat UTF-8 text files.
package sink

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

// Sink writes transcripts under a base directory.
type Sink struct {
	// Dir is the output directory. Empty means the current directory.
	Dir string
	// now is swapped in tests to pin the derived filename.
	now func() time.Time
}

func New(dir string) *Sink {
	return &Sink{Dir: dir, now: time.Now}
}

// Save writes text to filename. An empty filename derives
// transcription_<YYYYMMDD_HHMMSS>.txt from the wall clock at call time.
//
// Derived names are created exclusively, so two saves within the same second
// collide with an error instead of silently overwriting each other; callers
// giving an explicit filename overwrite as they asked. Returns the path
// written.
func (s *Sink) Save(text string, filename string) (string, error) {
	derived := filename == ""
	if derived {
		filename = fmt.Sprintf("transcription_%s.txt", s.now().Format("20060102_150405"))
	}

	path := filename
	if !filepath.IsAbs(path) && s.Dir != "" {
		path = filepath.Join(s.Dir, filename)
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if derived {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}

	file, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		return "", fmt.Errorf("save transcription to %s: %w", path, err)
	}

	if _, err := file.WriteString(text); err != nil {
		file.Close()
		return "", fmt.Errorf("write transcription: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("close transcription file: %w", err)
	}

	log.Printf("sink: saved transcription to %s", path)
	return path, nil
}

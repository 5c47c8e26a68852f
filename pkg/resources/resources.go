package resources

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	// Packages
	errors "github.com/djthorpe/go-errors"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Audio file extensions recognized during discovery
var Extensions = []string{".wav", ".m4a", ".mp3", ".flac", ".aac"}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Discover returns the audio files in a directory, sorted by name
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.ErrNotFound.Withf("resources directory %q", dir)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if IsAudio(entry.Name()) {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	slices.Sort(files)

	// Return success
	return files, nil
}

// Find returns the discovered file with the given base name
func Find(files []string, name string) (string, error) {
	for _, file := range files {
		if filepath.Base(file) == name {
			return file, nil
		}
	}
	return "", errors.ErrNotFound.Withf("file %q", name)
}

// IsAudio returns true when the file name has a recognized audio extension
func IsAudio(name string) bool {
	return slices.Contains(Extensions, strings.ToLower(filepath.Ext(name)))
}

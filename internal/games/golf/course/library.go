package course

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
)

//go:embed assets/elements.txt
var defaultElements []byte

//go:embed assets/00.crs
var sampleCourse []byte

// SampleID is the library id of the embedded course.
const SampleID = "sample"

var courseFileRe = regexp.MustCompile(`^(\d{2})\.crs$`)

// DefaultCatalog parses the embedded element templates.
func DefaultCatalog() (*Catalog, error) {
	return ReadTemplates(bytes.NewReader(defaultElements))
}

// LoadCatalog reads templates from path, or the embedded set when path is empty.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("course: open templates: %w", err)
	}
	defer f.Close()
	return ReadTemplates(f)
}

// Sample parses the embedded sample course.
func Sample(cat *Catalog) (*Course, error) {
	return Parse(bytes.NewReader(sampleCourse), cat)
}

// Entry is one course available to play.
type Entry struct {
	ID     string // "sample" or the two-digit file number
	Path   string // Empty for the embedded course
	Course *Course
}

// Library lists the playable courses.
type Library struct {
	Entries []Entry
}

// LoadLibrary loads the embedded sample course followed by every NN.crs
// file in dir, in file order. An empty dir yields only the sample.
// A malformed file fails the whole load.
func LoadLibrary(dir string, cat *Catalog) (*Library, error) {
	sample, err := Sample(cat)
	if err != nil {
		return nil, fmt.Errorf("course: embedded sample: %w", err)
	}
	lib := &Library{Entries: []Entry{{ID: SampleID, Course: sample}}}
	if dir == "" {
		return lib, nil
	}

	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("course: read dir: %w", err)
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name() < files[j].Name() })
	for _, f := range files {
		m := courseFileRe.FindStringSubmatch(f.Name())
		if f.IsDir() || m == nil {
			continue
		}
		path := filepath.Join(dir, f.Name())
		c, err := LoadFile(path, cat)
		if err != nil {
			return nil, err
		}
		lib.Entries = append(lib.Entries, Entry{ID: m[1], Path: path, Course: c})
	}
	return lib, nil
}

// LoadFile parses a single course file.
func LoadFile(path string, cat *Catalog) (*Course, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("course: open %s: %w", path, err)
	}
	defer f.Close()
	c, err := Parse(f, cat)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return c, nil
}

// Find returns the entry with the given id or course name.
func (l *Library) Find(key string) (Entry, bool) {
	for _, e := range l.Entries {
		if e.ID == key || e.Course.Name == key {
			return e, true
		}
	}
	return Entry{}, false
}

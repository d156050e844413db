// Package info reports what a site folder holds.
package info

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/timsite/tim/internal/logfields"
	"github.com/timsite/tim/internal/site"
)

// Report summarizes one site.
type Report struct {
	Site       string            `yaml:"site"`
	Folders    int               `yaml:"folders"`
	HTMLFiles  int               `yaml:"html_files"`
	OtherFiles int               `yaml:"other_files"`
	Data       map[string]string `yaml:"data"`
	Config     map[string]string `yaml:"config"`
}

// Gather checks the site layout, counts the feed tree and loads the site data
// and config.
func Gather(s *site.Site) (*Report, error) {
	if err := s.CheckLayout(); err != nil {
		return nil, err
	}
	r := &Report{Site: s.Name}

	_ = filepath.WalkDir(s.FeedDir, func(path string, d fs.DirEntry, err error) error {
		switch {
		case err != nil:
			slog.Error("Directory entry was NOT read", logfields.Path(path), logfields.Error(err))
		case path == s.FeedDir:
		case d.IsDir():
			r.Folders++
		case !d.Type().IsRegular():
		case filepath.Ext(path) == ".html":
			r.HTMLFiles++
		default:
			r.OtherFiles++
		}
		return nil
	})

	if err := s.LoadData(); err != nil {
		return nil, err
	}
	if err := s.LoadConfig(); err != nil {
		return nil, err
	}
	r.Data = s.Data
	r.Config = s.Config
	return r, nil
}

// WriteText prints the report in sections, keys sorted.
func WriteText(w io.Writer, r *Report) error {
	var b strings.Builder
	section := func(title string) {
		fmt.Fprintf(&b, "\n########## Info from %s ##########\n", title)
	}
	end := func() {
		b.WriteString("############################################\n")
	}

	section("_feed folder")
	fmt.Fprintf(&b, "Number of folders: %d\n", r.Folders)
	fmt.Fprintf(&b, "Number of HTML files: %d\n", r.HTMLFiles)
	fmt.Fprintf(&b, "Number of other files: %d\n", r.OtherFiles)
	end()

	for _, part := range []struct {
		title string
		data  map[string]string
	}{{"_data file", r.Data}, {"_config file", r.Config}} {
		section(part.title)
		for _, k := range sortedKeys(part.data) {
			fmt.Fprintf(&b, "### Key: %s ### Value: %s\n", k, part.data[k])
		}
		end()
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteYAML prints the report as a YAML document.
func WriteYAML(w io.Writer, r *Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode site report: %w", err)
	}
	return enc.Close()
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

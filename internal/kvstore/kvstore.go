// Package kvstore reads the flat key:value text format shared by site data,
// site config and page headers.
//
// One record per line: the key runs up to the first ':' and the value is the
// rest of the line, so later colons belong to the value. A line without ':' is
// a key with an empty value. Duplicate keys keep the last value.
package kvstore

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/timsite/tim/internal/errors"
)

// HeaderEnd is the key that terminates a page header.
const HeaderEnd = ";"

// Read parses the whole stream as records.
func Read(r io.Reader) (map[string]string, error) {
	return read(bufio.NewReader(r), false)
}

// ReadHeader parses records until the first line whose key is HeaderEnd. The
// reader is left positioned immediately after that line, so what remains is
// the page body. A stream without a terminator is all header.
func ReadHeader(r *bufio.Reader) (map[string]string, error) {
	return read(r, true)
}

// LoadFile opens path and parses it with Read.
func LoadFile(path string) (map[string]string, error) {
	// #nosec G304 -- site files are addressed by the user on purpose.
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, path+" file is NOT open").
			WithContext("path", path).
			Build()
	}
	defer func() { _ = f.Close() }()

	data, err := Read(f)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "read "+path).
			WithContext("path", path).
			Build()
	}
	return data, nil
}

func read(r *bufio.Reader, header bool) (map[string]string, error) {
	data := make(map[string]string)
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			key, value := splitRecord(line)
			if header && key == HeaderEnd {
				return data, nil
			}
			if key != "" || value != "" {
				data[key] = value
			}
		}
		if err == io.EOF {
			return data, nil
		}
		if err != nil {
			return data, err
		}
	}
}

func splitRecord(line string) (key, value string) {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	key, value, _ = strings.Cut(line, ":")
	return key, value
}

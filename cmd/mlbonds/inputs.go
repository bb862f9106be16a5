package main

import (
	"io"
	"os"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"

	chem "github.com/rmera/mlbonds"
)

var xyzExtensions = []string{"xyz", "xyz.gz", "xyz.zst"}

// xyzInputs expands the directories in args to the xyz files they contain.
// Other arguments are taken as files.
func xyzInputs(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		var found []string
		for _, ext := range xyzExtensions {
			f, err := chem.ScanDir(arg, ext)
			if err != nil {
				return nil, err
			}
			found = append(found, f...)
		}
		sort.Strings(found)
		files = append(files, found...)
	}
	files = lo.Uniq(files)
	if len(files) == 0 {
		return nil, errors.New("no xyz files given")
	}
	return files, nil
}

// nopCloser keeps the command's output stream open.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// output opens name for writing, or returns w if name is "-" or empty.
func output(name string, w io.Writer) (io.WriteCloser, error) {
	if name == "" || name == "-" {
		return nopCloser{w}, nil
	}
	return chem.CreateFile(name)
}

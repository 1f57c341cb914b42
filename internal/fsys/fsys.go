// Package fsys reads a single directory into plain entry values.
package fsys

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// Entry is one directory member as seen by the listing.
type Entry struct {
	Name  string
	Path  string
	IsDir bool
	Size  uint64
}

// Listing is the result of reading one directory. Entries whose metadata
// could not be read are reported in Failures and left out of Entries.
type Listing struct {
	Dir      string
	Entries  []Entry
	Failures []*EntryMetadataError
}

// List reads dir from the host filesystem.
func List(dir string) (Listing, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return Listing{Dir: dir}, &DirectoryAccessError{Dir: dir, Err: unwrapPath(err)}
	}
	if !info.IsDir() {
		return Listing{Dir: dir}, &DirectoryAccessError{Dir: dir, Err: errNotDirectory}
	}
	return ListFS(os.DirFS(dir), ".", dir)
}

var errNotDirectory = errors.New("not a directory")

// ListFS reads name from fsys. display is the path used for error messages
// and is joined with each entry name to form Entry.Path.
func ListFS(fsys fs.FS, name, display string) (Listing, error) {
	listing := Listing{Dir: display}

	dirEntries, err := fs.ReadDir(fsys, name)
	if err != nil {
		return listing, &DirectoryAccessError{Dir: display, Err: unwrapPath(err)}
	}

	listing.Entries = make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		info, err := de.Info()
		if err != nil {
			listing.Failures = append(listing.Failures, &EntryMetadataError{Name: de.Name(), Err: err})
			continue
		}
		listing.Entries = append(listing.Entries, Entry{
			Name:  de.Name(),
			Path:  filepath.Join(display, de.Name()),
			IsDir: info.IsDir(),
			Size:  sizeOf(info),
		})
	}

	sort.SliceStable(listing.Entries, func(i, j int) bool {
		return listing.Entries[i].Name < listing.Entries[j].Name
	})
	return listing, nil
}

// unwrapPath drops the *fs.PathError layer; DirectoryAccessError already
// names the directory.
func unwrapPath(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}

func sizeOf(info fs.FileInfo) uint64 {
	if info.Size() < 0 {
		return 0
	}
	return uint64(info.Size())
}

// Summary is a short description used in log records.
func (l Listing) Summary() string {
	return fmt.Sprintf("%d entries, %d unreadable", len(l.Entries), len(l.Failures))
}

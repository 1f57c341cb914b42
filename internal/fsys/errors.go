package fsys

import "fmt"

// DirectoryAccessError reports that the directory itself could not be read.
// It is fatal for the whole listing.
type DirectoryAccessError struct {
	Dir string
	Err error
}

func (e *DirectoryAccessError) Error() string {
	return fmt.Sprintf("cannot access %s: %v", e.Dir, e.Err)
}

func (e *DirectoryAccessError) Unwrap() error { return e.Err }

// EntryMetadataError reports that one entry could not be stat-ed, usually
// because it was removed between the directory read and the stat.
type EntryMetadataError struct {
	Name string
	Err  error
}

func (e *EntryMetadataError) Error() string {
	return fmt.Sprintf("%s: %v", e.Name, e.Err)
}

func (e *EntryMetadataError) Unwrap() error { return e.Err }

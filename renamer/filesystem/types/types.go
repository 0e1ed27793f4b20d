package types

import (
	"os"
)

// RenameOperation is one computed source to destination mapping.
// It is executed immediately and never stored.
type RenameOperation struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
}

// EntryKind classifies a directory entry for the walker
type EntryKind int

const (
	EntryOther EntryKind = iota
	EntryFile
	EntryDirectory
)

func (k EntryKind) String() string {
	switch k {
	case EntryFile:
		return "file"
	case EntryDirectory:
		return "directory"
	default:
		return "other"
	}
}

// KindOf classifies mode. Symlinks, sockets, pipes and devices are EntryOther.
func KindOf(mode os.FileMode) EntryKind {
	switch {
	case mode.IsDir():
		return EntryDirectory
	case mode.IsRegular():
		return EntryFile
	default:
		return EntryOther
	}
}

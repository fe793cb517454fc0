// Package model defines the data structures for source repair.
package model

// Path represents a file system path.
type Path string

// File represents a target file on disk.
type File struct {
	Path Path
	Hash string
}

// Source represents a discovered target file eligible for repair.
type Source struct {
	Origin *File
}

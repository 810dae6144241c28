// Package listfile reads a read-later list from disk and writes it back.
// Writes go to a temporary file in the target directory that is renamed
// over the list only after the full content is on disk, so a failed write
// never leaves a truncated list behind.
package listfile

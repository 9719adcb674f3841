// Package journal stores the agent's post history and error logs as JSON
// array files. An append is read-modify-write: the whole file is decoded,
// extended and rewritten, so the durability guarantee is "last successful
// write wins" and a crash mid-write can truncate history. The files are owned
// by a single writer process; running a second scheduler against the same
// files is unsupported.
package journal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"linkedin-agent/models"
)

// Log file names under the logs directory.
const (
	PostLogFile  = "posts.json"
	ErrorLogFile = "errors.json"
)

// StorageError marks a log file that could not be read or written. It is
// fatal to the cycle's record-keeping but must never crash the scheduler.
type StorageError struct {
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("journal %s: %v", e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// PostLog is the append-only history of publish attempts.
type PostLog struct {
	path string
}

func NewPostLog(dir string) *PostLog {
	return &PostLog{path: filepath.Join(dir, PostLogFile)}
}

// Entries returns the full history in insertion order. A missing file is an
// empty history, not an error.
func (l *PostLog) Entries() ([]models.PostLogEntry, error) {
	var entries []models.PostLogEntry
	if err := readAll(l.path, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Append adds an entry by rewriting the whole file.
func (l *PostLog) Append(entry models.PostLogEntry) error {
	entries, err := l.Entries()
	if err != nil {
		return err
	}
	return writeAll(l.path, append(entries, entry))
}

// ErrorLog records failed scheduled cycles.
type ErrorLog struct {
	path string
}

func NewErrorLog(dir string) *ErrorLog {
	return &ErrorLog{path: filepath.Join(dir, ErrorLogFile)}
}

func (l *ErrorLog) Entries() ([]models.ErrorLogEntry, error) {
	var entries []models.ErrorLogEntry
	if err := readAll(l.path, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (l *ErrorLog) Append(entry models.ErrorLogEntry) error {
	entries, err := l.Entries()
	if err != nil {
		return err
	}
	return writeAll(l.path, append(entries, entry))
}

func readAll(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return &StorageError{Path: path, Err: err}
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &StorageError{Path: path, Err: err}
	}
	return nil
}

func writeAll(path string, entries any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return &StorageError{Path: path, Err: err}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return &StorageError{Path: path, Err: err}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return &StorageError{Path: path, Err: err}
	}
	return nil
}

package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Makepad-fr/todosearch/internal/model"
)

// JSON export of a result set. Single file, human-readable, portable.
// The program never reads these files back.

const DefaultFileName = "todos.json"

// resolvePath maps "" to todos.json in the working directory.
func resolvePath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}
	return filepath.Join(wd, DefaultFileName), nil
}

// Save writes items as indented JSON and returns the path written.
func Save(path string, items []model.TodoItem) (string, error) {
	p, err := resolvePath(path)
	if err != nil {
		return "", err
	}
	if items == nil {
		items = []model.TodoItem{}
	}
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return "", fmt.Errorf("json marshal: %w", err)
	}
	if dir := filepath.Dir(p); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("mkdir: %w", err)
		}
	}
	if err := os.WriteFile(p, append(b, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return p, nil
}

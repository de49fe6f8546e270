package kv

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/familycar/datastore/config"
)

// fileMedium stores each key as <root>/<key>.json on the local filesystem.
type fileMedium struct {
	root string // absolute root directory
}

// NewFile returns a file-backed medium rooted at root. An empty root uses
// the configured KV_FILE_ROOT (default "data"), resolved against the
// working directory.
func NewFile(root string) (Medium, error) {
	if root == "" {
		root = config.FileRoot()
	}
	if !filepath.IsAbs(root) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("kv/file: getwd: %w", err)
		}
		root = filepath.Join(cwd, root)
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("kv/file: mkdir %s: %w", root, err)
	}
	return &fileMedium{root: root}, nil
}

func (d *fileMedium) path(key string) string {
	return filepath.Join(d.root, key+".json")
}

func (d *fileMedium) Get(key string) (string, bool, error) {
	data, err := os.ReadFile(d.path(key))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("kv/file: get %s: %w", key, err)
	}
	return string(data), true, nil
}

func (d *fileMedium) Set(key, value string) error {
	if err := os.WriteFile(d.path(key), []byte(value), 0o644); err != nil {
		return fmt.Errorf("kv/file: set %s: %w", key, err)
	}
	return nil
}

func (d *fileMedium) Remove(key string) error {
	err := os.Remove(d.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("kv/file: remove %s: %w", key, err)
	}
	return nil
}

func (d *fileMedium) Close() error { return nil }

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads API credentials from a directory of plain-text
// files, one secret per file: the filename is the key name, the trimmed
// contents are the value. The engine only looks for ncbi-api-key, which
// raises the E-utilities rate limit, but unrecognized files load too so
// a deployment can stash related credentials alongside it.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Load reads every secret file in dir. A missing directory is not an
// error: running without an API key is the normal case, so Load returns
// an empty map. Unreadable files are skipped with a warning on stderr
// rather than failing startup.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		value, err := readValue(filepath.Join(dir, entry.Name()))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: skipping secret %s: %v\n", entry.Name(), err)
			continue
		}
		if value != "" {
			secrets[entry.Name()] = value
		}
	}
	return secrets, nil
}

func readValue(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

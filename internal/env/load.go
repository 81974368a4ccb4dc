// Package env loads .env files and resolves demo environment overrides.
package env

import (
	"bufio"
	"os"
	"strings"
)

// assetsDirVar overrides where materials, the skybox, and UI styles are
// looked up. Defaults to ./assets.
const assetsDirVar = "ORBIT_ASSETS_DIR"

// Load reads the given file (e.g. ".env") and sets an environment variable
// for each KEY=VALUE line. Empty lines and #-comments are skipped. A missing
// file is not an error.
func Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key == "" {
			continue
		}
		if len(value) >= 2 &&
			(value[0] == '"' && value[len(value)-1] == '"' ||
				value[0] == '\'' && value[len(value)-1] == '\'') {
			value = value[1 : len(value)-1]
		}
		_ = os.Setenv(key, value)
	}
	return scanner.Err()
}

// AssetsDir returns the asset root directory, honoring ORBIT_ASSETS_DIR.
func AssetsDir() string {
	if dir := os.Getenv(assetsDirVar); dir != "" {
		return dir
	}
	return "assets"
}

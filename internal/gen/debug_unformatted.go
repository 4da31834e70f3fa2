package gen

import (
	"os"
	"path/filepath"
	"strings"
)

// debugPath is the sidecar file holding unformatted output. It keeps the .go
// extension for syntax highlighting, and the ignore prefix keeps the go tool
// from compiling it.
func debugPath(dir, filename string) string {
	return filepath.Join(dir, "_"+strings.TrimSuffix(filename, ".go")+".unformatted.go")
}

// writeDebugUnformatted writes code that failed to format next to the
// intended output. Failures are ignored by callers.
func writeDebugUnformatted(dir, filename string, content []byte) error {
	if dir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return err
	}

	return os.WriteFile(debugPath(dir, filename), content, filePerm)
}

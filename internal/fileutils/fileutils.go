// Package fileutils provides common file operations used by the commands.
package fileutils

import (
	"fmt"
	"os"
)

// FileExists checks if a file exists and is not a directory.
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// ReadTextFile reads an entire file as a string, with a friendlier error
// for the common missing-file case.
func ReadTextFile(filePath string) (string, error) {
	if !FileExists(filePath) {
		return "", fmt.Errorf("file does not exist: %s", filePath)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	return string(data), nil
}

package testutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// CreateTestFile create a test file
func CreateTestFile(fileName string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(fileName), 0750); err != nil {
		return fmt.Errorf("failed to create test dir: %w", err)
	}
	if err := os.WriteFile(fileName, content, 0600); err != nil {
		return fmt.Errorf("failed to create test file: %w", err)
	}
	return nil
}

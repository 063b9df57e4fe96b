package canaries

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ValidateFolder checks that path exists and is a directory.
func ValidateFolder(path string) error {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &InputError{Path: path, Err: ErrInvalidFolder}
	}
	if err != nil {
		return &InputError{Path: path, Err: fmt.Errorf("%w: %v", ErrInvalidFolder, err)}
	}
	if !info.IsDir() {
		return &InputError{Path: path, Err: ErrInvalidFolder}
	}
	return nil
}

// ValidateFolders checks every folder before any work starts, so a bad
// argument never leaves a half-written report behind.
func ValidateFolders(paths []string) error {
	for _, path := range paths {
		if err := ValidateFolder(path); err != nil {
			return err
		}
	}
	return nil
}

//go:build !linux && !darwin

package canaries

import (
	"os"
	"time"
)

// creationTime uses the modification time where no portable birth time exists.
func creationTime(path string) (time.Time, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}

//go:build darwin

package canaries

import (
	"os"
	"syscall"
	"time"
)

func creationTime(path string) (time.Time, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return time.Time{}, err
	}
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return info.ModTime(), nil
	}
	sec, nsec := st.Birthtimespec.Unix()
	return time.Unix(sec, nsec), nil
}

//go:build linux

package canaries

import (
	"errors"
	"time"

	"golang.org/x/sys/unix"
)

var statx = unix.Statx

// creationTime prefers the birth time statx reports and falls back to the
// inode change time on filesystems that don't record one, or on kernels and
// sandboxes where statx itself is unavailable.
func creationTime(path string) (time.Time, error) {
	var stx unix.Statx_t
	err := statx(unix.AT_FDCWD, path, unix.AT_SYMLINK_NOFOLLOW, unix.STATX_BTIME|unix.STATX_CTIME, &stx)
	if errors.Is(err, unix.ENOSYS) || errors.Is(err, unix.EPERM) {
		return changeTime(path)
	}
	if err != nil {
		return time.Time{}, err
	}
	if stx.Mask&unix.STATX_BTIME != 0 {
		return time.Unix(stx.Btime.Sec, int64(stx.Btime.Nsec)), nil
	}
	return time.Unix(stx.Ctime.Sec, int64(stx.Ctime.Nsec)), nil
}

func changeTime(path string) (time.Time, error) {
	var st unix.Stat_t
	if err := unix.Lstat(path, &st); err != nil {
		return time.Time{}, err
	}
	sec, nsec := st.Ctim.Unix()
	return time.Unix(sec, nsec), nil
}

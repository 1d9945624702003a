//go:build linux || darwin || freebsd

package system

import "golang.org/x/sys/unix"

func diskFree(path string) (uint64, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return 0, err
	}
	//nolint:unconvert // field widths differ between platforms
	return uint64(st.Bavail) * uint64(st.Bsize), nil
}

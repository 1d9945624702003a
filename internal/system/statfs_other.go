//go:build !linux && !darwin && !freebsd

package system

func diskFree(string) (uint64, error) {
	return 0, ErrUnsupported
}

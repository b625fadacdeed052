//go:build !debug

package imaging

func debugLog(string, ...any) {}

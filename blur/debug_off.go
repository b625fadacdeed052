//go:build !debug

package blur

func debugLog(string, ...any) {}

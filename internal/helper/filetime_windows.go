//go:build windows

package helper

// epochDiffMs is the number of milliseconds between the Windows FILETIME
// epoch (1601-01-01) and the Unix epoch (1970-01-01), matching the constant
// used by libuiohook's get_unix_timestamp on Windows.
const epochDiffMs = 11644473600000

// FileTimeToUnixMillis converts a Windows FILETIME (100ns ticks since
// 1601-01-01) to Unix epoch milliseconds. Supplemented from the original's
// Windows get_unix_timestamp, which the distilled spec omitted. The Windows
// runtime stamps events with time.Now() and does not call it.
func FileTimeToUnixMillis(fileTime uint64) int64 {
	return int64(fileTime/10000) - epochDiffMs
}

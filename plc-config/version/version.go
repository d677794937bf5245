package version

import "fmt"

// Version and BuildDate are stamped by build.go through -ldflags.
var (
	Version   = "dev"
	BuildDate = "not set"
)

// String is the one-line banner shown by -version and the TUI status pane.
func String() string {
	return fmt.Sprintf("plc-config %s (built %s)", Version, BuildDate)
}

package cli

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Version and Commit are injected at build time:
//
//	go build -ldflags "-X github.com/avaldez/qatrail/internal/cli.Version=v0.1.0
//	  -X github.com/avaldez/qatrail/internal/cli.Commit=48cae1d"
//
// When Commit is not injected, the command falls back to the vcs.revision
// stamped into the binary's build info.
var (
	Version = ""
	Commit  = ""
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and commit hash",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(versionLine())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func versionLine() string {
	v := Version
	if v == "" {
		v = "dev"
	}
	c := Commit
	if c == "" {
		c = vcsRevision()
	}
	if len(c) > 7 {
		c = c[:7]
	}
	if c == "" {
		return fmt.Sprintf("qat %s", v)
	}
	return fmt.Sprintf("qat %s (%s)", v, c)
}

func vcsRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return ""
}

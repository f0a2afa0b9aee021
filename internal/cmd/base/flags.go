package base

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"strings"
)

// FlagSet wraps a standard library flag set with help rendering for
// mitchellh/cli commands.
type FlagSet struct {
	*flag.FlagSet
}

// NewFlagSet wraps f. Parse errors are returned to the caller instead of
// being printed, so commands can report them through their cli.Ui.
func NewFlagSet(f *flag.FlagSet) *FlagSet {
	f.SetOutput(io.Discard)
	return &FlagSet{FlagSet: f}
}

// Help returns the flag documentation as a block suitable for appending to
// a command's Help text.
func (f *FlagSet) Help() string {
	var buf bytes.Buffer
	buf.WriteString("\n\nOptions:\n")

	f.VisitAll(func(fl *flag.Flag) {
		name, usage := flag.UnquoteUsage(fl)
		line := "  -" + fl.Name
		if name != "" {
			line += " <" + name + ">"
		}
		fmt.Fprintf(&buf, "\n%s\n", line)
		for _, l := range strings.Split(usage, "\n") {
			fmt.Fprintf(&buf, "      %s\n", l)
		}
		if fl.DefValue != "" && fl.DefValue != "false" {
			fmt.Fprintf(&buf, "      Default: %s\n", fl.DefValue)
		}
	})

	return strings.TrimRight(buf.String(), "\n")
}

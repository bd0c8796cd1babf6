package subcmd

import (
	"flag"
	"fmt"
)

func New(name, doc string) *Subcommand {
	sc := &Subcommand{
		FlagSet: flag.NewFlagSet(name, flag.ContinueOnError),
	}
	sc.FlagSet.Usage = func() {
		out := sc.FlagSet.Output()
		argSuffix := ""
		for _, arg := range sc.args {
			argSuffix += fmt.Sprintf(" <%s>", arg.name)
		}
		fmt.Fprintf(out, "\n"+doc+"\n\n")
		fmt.Fprintf(out, "  lineup %s [flags]%s\n\n", name, argSuffix)
		fmt.Fprintf(out, "flags:\n")
		sc.FlagSet.PrintDefaults()
		for _, arg := range sc.args {
			fmt.Fprintf(out, "  <%s> %s\n", arg.name, arg.typename)
			fmt.Fprintf(out, "  \t%s\n", arg.usage)
		}
	}
	return sc
}

type Subcommand struct {
	*flag.FlagSet
	args []arg
}

type arg struct {
	name     string
	typename string
	usage    string
}

// SetArg documents a positional argument. Call it once per argument, in
// order.
func (sc *Subcommand) SetArg(name, typname, usage string) *Subcommand {
	sc.args = append(sc.args, arg{name, typname, usage})
	return sc
}

// Parse parses flags, then checks that exactly as many positional arguments
// were given as were declared with SetArg.
func (sc *Subcommand) Parse(arguments []string) error {
	if err := sc.FlagSet.Parse(arguments); err != nil {
		return err
	}
	if got, want := sc.NArg(), len(sc.args); got != want {
		sc.FlagSet.Usage()
		return fmt.Errorf("%s: expected %d arguments but got %d", sc.Name(), want, got)
	}
	return nil
}

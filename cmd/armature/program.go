package main

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/phanxgames/armature"
	"github.com/scott-cotton/cli"
)

var spewConfig *spew.ConfigState

func init() {
	spewConfig = spew.NewDefaultConfig()
	spewConfig.DisableCapacities = true
	spewConfig.DisablePointerAddresses = true
}

type programConfig struct {
	*cli.Command
	Config string `cli:"name=config aliases=c desc='YAML import config'"`
	Spew   bool   `cli:"name=spew desc='dump every entry with go-spew'"`
}

// ProgramCommand returns the program subcommand.
func ProgramCommand() *cli.Command {
	cfg := &programConfig{}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "program").
		WithSynopsis("program [--config f] [--spew] <dir> <name> - Print the compiled animation program").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *programConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	l, err := load(cfg.Config, args)
	if err != nil {
		return err
	}
	if cfg.Spew {
		for _, e := range l.instance.Program.Entries() {
			fmt.Fprintf(cc.Out, "%s\n%s", e.Identity, spewConfig.Sdump(e.Composition.Channels))
		}
		return nil
	}
	writeProgram(cc.Out, l.instance.Program)
	return nil
}

// writeProgram prints one block per bone, one line per segment.
func writeProgram(w io.Writer, p *armature.Program) {
	fmt.Fprintf(w, "%d bones, %.3fs\n", p.Len(), p.Duration())
	for _, e := range p.Entries() {
		fmt.Fprintf(w, "%s (node %d) %.3fs\n", e.Identity, e.Node, e.Composition.Duration())
		for _, ch := range e.Composition.Channels {
			fmt.Fprintf(w, "  %s: %d segments\n", ch.Kind, len(ch.Segments))
			for i, s := range ch.Segments {
				switch ch.Kind {
				case armature.ChannelTranslate:
					fmt.Fprintf(w, "    %d: %.3fs move (%g, %g)\n", i, s.Duration, s.Move.X(), s.Move.Y())
				case armature.ChannelRotate:
					fmt.Fprintf(w, "    %d: %.3fs rotate %.4g\n", i, s.Duration, s.Rotate)
				}
			}
		}
	}
}

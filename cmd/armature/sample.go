package main

import (
	"fmt"
	"io"

	"github.com/phanxgames/armature"
	"github.com/scott-cotton/cli"
)

// sampleTick is the fixed step used to advance the scene, in milliseconds.
const sampleTick = 20

type sampleConfig struct {
	*cli.Command
	Config string `cli:"name=config aliases=c desc='YAML import config'"`
	MS     int    `cli:"name=ms desc='milliseconds to play before sampling'"`
}

// SampleCommand returns the sample subcommand.
func SampleCommand() *cli.Command {
	cfg := &sampleConfig{}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "sample").
		WithSynopsis("sample [--config f] [--ms n] <dir> <name> - Play the animation and print bone poses").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *sampleConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.MS < 0 {
		return fmt.Errorf("%w: --ms must not be negative", cli.ErrUsage)
	}
	l, err := load(cfg.Config, args)
	if err != nil {
		return err
	}
	if err := l.instance.Play(l.scene); err != nil {
		return err
	}
	advance(l.scene, cfg.MS)
	return writePoses(cc.Out, l.scene, l.instance.Program, cfg.MS)
}

// advance steps scene by ms milliseconds in fixed ticks.
func advance(scene *armature.Scene, ms int) {
	for left := ms; left > 0; left -= sampleTick {
		step := min(left, sampleTick)
		scene.Advance(float32(step) / 1000)
	}
}

// writePoses prints the local transform of every animated bone.
func writePoses(w io.Writer, scene *armature.Scene, p *armature.Program, ms int) error {
	fmt.Fprintf(w, "t=%dms\n", ms)
	for _, e := range p.Entries() {
		n, err := scene.Mutate(e.Node)
		if err != nil {
			return err
		}
		state := "done"
		if scene.Playing(e.Node) {
			state = "playing"
		}
		fmt.Fprintf(w, "%s pos=(%.3f,%.3f) rot=%.4f %s\n", e.Identity, n.X, n.Y, n.Rotation, state)
	}
	return nil
}

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/phanxgames/armature"
	"github.com/scott-cotton/cli"
)

type treeConfig struct {
	*cli.Command
	Config string `cli:"name=config aliases=c desc='YAML import config'"`
	Color  bool   `cli:"name=color desc='colorize output'"`
}

// TreeCommand returns the tree subcommand.
func TreeCommand() *cli.Command {
	cfg := &treeConfig{}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "tree").
		WithSynopsis("tree [--config f] [--color] <dir> <name> - Print the assembled node tree").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *treeConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	l, err := load(cfg.Config, args)
	if err != nil {
		return err
	}
	root, err := l.scene.Mutate(l.instance.Root)
	if err != nil {
		return err
	}
	colors := plainColors()
	if cfg.Color {
		colors = newColors()
	}
	writeTree(cc.Out, root, colors)
	return nil
}

// treeColors formats the parts of a tree line.
type treeColors struct {
	Bone   func(string, ...any) string
	Slot   func(string, ...any) string
	Detail func(string, ...any) string
}

func newColors() *treeColors {
	return &treeColors{
		Bone:   color.RGB(196, 96, 16).SprintfFunc(),
		Slot:   color.RGB(8, 196, 16).SprintfFunc(),
		Detail: color.BlueString,
	}
}

func plainColors() *treeColors {
	return &treeColors{Bone: fmt.Sprintf, Slot: fmt.Sprintf, Detail: fmt.Sprintf}
}

// writeTree prints n and its subtree, one node per line, indented by depth
// below n. Bones also show their world origin. The listing ends with the
// world bounds of the visible sprites.
func writeTree(w io.Writer, n *armature.Node, colors *treeColors) {
	base := n.Depth()
	n.Walk(func(d *armature.Node) bool {
		indent := strings.Repeat("  ", d.Depth()-base)
		switch d.Type {
		case armature.NodeTypeSprite:
			r := d.TextureRegion
			fmt.Fprintf(w, "%s%s %s\n", indent, colors.Slot("slot %s", d.Name),
				colors.Detail("region=%s %dx%d pos=(%g,%g) rot=%.4g", r.Name, r.Width, r.Height, d.X, d.Y, d.Rotation))
		default:
			wx, wy := d.WorldOrigin()
			fmt.Fprintf(w, "%s%s %s\n", indent, colors.Bone("bone %s", d.Name),
				colors.Detail("pos=(%g,%g) rot=%.4g world=(%.4g,%.4g)", d.X, d.Y, d.Rotation, wx, wy))
		}
		return true
	})
	if b, ok := n.SubtreeBounds(); ok {
		fmt.Fprintf(w, "%s\n", colors.Detail("bounds (%g,%g) %gx%g", b.X, b.Y, b.Width, b.Height))
	}
}

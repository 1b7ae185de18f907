package main

import (
	"fmt"
	"os"

	"github.com/phanxgames/armature"
	"github.com/pkg/errors"
	"github.com/scott-cotton/cli"
)

const usageText = `armature - DragonBones skeleton importer

Usage:
  armature tree [--config f] [--color] <dir> <name>     Print the assembled node tree
  armature program [--config f] [--spew] <dir> <name>   Print the compiled animation program
  armature sample [--config f] [--ms n] <dir> <name>    Play the animation and print bone poses

<dir> holds <name>_ske.json and <name>_tex.json.

Examples:
  armature tree ./assets dragon
  armature program --spew ./assets dragon
  armature sample --ms 400 ./assets dragon`

// Root returns the root command for armature.
func Root() *cli.Command {
	return cli.NewCommand("armature").
		WithSynopsis("armature - DragonBones skeleton importer").
		WithDescription(usageText).
		WithSubs(
			TreeCommand(),
			ProgramCommand(),
			SampleCommand())
}

// loaded is a character instantiated into a fresh scene.
type loaded struct {
	cfg      armature.Config
	scene    *armature.Scene
	instance *armature.Instance
}

// load reads the optional config, loads <dir>/<name> and assembles it into
// a new scene.
func load(configPath string, args []string) (*loaded, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("%w: expected <dir> <name>", cli.ErrUsage)
	}
	cfg, err := readConfig(configPath)
	if err != nil {
		return nil, err
	}
	char, err := armature.LoadCharacter(os.DirFS(args[0]), args[1])
	if err != nil {
		return nil, err
	}
	scene := armature.NewScene()
	scene.SetDebugMode(cfg.Debug)
	inst, err := char.Instantiate(scene, cfg)
	if err != nil {
		return nil, err
	}
	scene.RefreshTransforms()
	return &loaded{cfg: cfg, scene: scene, instance: inst}, nil
}

func readConfig(path string) (armature.Config, error) {
	if path == "" {
		return armature.DefaultConfig(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return armature.Config{}, errors.Wrapf(err, "could not open config %q", path)
	}
	defer f.Close()
	return armature.ReadConfig(f)
}

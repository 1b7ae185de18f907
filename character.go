package armature

import (
	"io/fs"

	"github.com/pkg/errors"
)

// Skeleton and atlas file suffixes of a DragonBones export.
const (
	SkeletonSuffix = "_ske.json"
	AtlasSuffix    = "_tex.json"
)

// Character is a parsed DragonBones export: the skeleton document and its
// texture atlas. Read-only; it can be instantiated into any number of
// stores.
type Character struct {
	Name     string
	Skeleton *SkeletonDocument
	Atlas    *Atlas
}

// LoadCharacter reads <name>_ske.json and <name>_tex.json from fsys.
func LoadCharacter(fsys fs.FS, name string) (*Character, error) {
	skeData, err := fs.ReadFile(fsys, name+SkeletonSuffix)
	if err != nil {
		return nil, errors.Wrapf(err, "read skeleton of %q", name)
	}
	texData, err := fs.ReadFile(fsys, name+AtlasSuffix)
	if err != nil {
		return nil, errors.Wrapf(err, "read atlas of %q", name)
	}
	return ParseCharacter(name, skeData, texData)
}

// ParseCharacter parses an already loaded skeleton and atlas.
func ParseCharacter(name string, skeleton, atlas []byte) (*Character, error) {
	doc, err := ParseSkeleton(skeleton)
	if err != nil {
		return nil, errors.Wrapf(err, "%s%s", name, SkeletonSuffix)
	}
	at, err := LoadAtlas(atlas)
	if err != nil {
		return nil, errors.Wrapf(err, "%s%s", name, AtlasSuffix)
	}
	return &Character{Name: name, Skeleton: doc, Atlas: at}, nil
}

// Instance is one character assembled into a store, with its compiled
// animation.
type Instance struct {
	*Assembly
	Program *Program
}

// Instantiate assembles the character into store and compiles the animation
// selected by cfg. Nothing is started.
func (c *Character) Instantiate(store NodeStore, cfg Config) (*Instance, error) {
	asm, err := Assemble(c.Skeleton, c.Atlas, store)
	if err != nil {
		return nil, errors.Wrapf(err, "assemble %q", c.Name)
	}
	prog, err := CompileAnimation(c.Skeleton, cfg.Animation, asm.Index, cfg.Compile())
	if err != nil {
		return nil, errors.Wrapf(err, "compile %q", c.Name)
	}
	return &Instance{Assembly: asm, Program: prog}, nil
}

// Play starts the instance's program on store.
func (in *Instance) Play(store NodeStore) error {
	return Run(in.Program, store)
}

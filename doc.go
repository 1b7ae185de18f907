// Package armature imports DragonBones skeletal animations into a retained
// node tree and plays them back as eased relative motions.
//
// A DragonBones export is two JSON documents: a skeleton (<name>_ske.json)
// describing bones, slots and keyframed animations, and a texture atlas
// (<name>_tex.json) naming rectangles of a single image.
//
// # Quick start
//
//	char, err := armature.LoadCharacter(os.DirFS("assets"), "dragon")
//	if err != nil { ... }
//	scene := armature.NewScene()
//	inst, err := char.Instantiate(scene, armature.DefaultConfig())
//	if err != nil { ... }
//	if err := inst.Play(scene); err != nil { ... }
//
//	// once per frame
//	scene.Update()
//
// # Assembly
//
// [Assemble] builds a skeleton into any [NodeStore]. Every slot becomes a
// sprite [Node] pivoting on its region centroid and every bone a container
// pivoting on its origin. Nodes are staged first and moved into the store one
// edge at a time, so a document may declare children before their parents.
// The returned [IdentityIndex] maps each [NodeIdentity] to the [NodeID] the
// store handed out. Slots and bones live in separate namespaces: "head" the
// slot and "head" the bone are different identities.
//
// Any unresolved reference aborts the whole assembly with a [*RecordError]
// naming the offending record and field. Reference errors are found before
// the store is touched.
//
// # Animation
//
// [Compile] turns absolute keyframes into a [Program]: per bone, a
// [Composition] of a translation and a rotation [Channel] running in
// parallel, each a chain of relative [Segment]s eased with cubic in/out.
// Keyframe durations are divided by [CompileConfig.FrameRate] to get
// seconds. [Composition.Sample] is a pure function of elapsed time.
//
// [Run] starts a program on a store. [Scene] runs one player per node; a new
// composition on a busy node supersedes the old one, and every run starts
// from the node's rest pose so restarting is idempotent.
//
// # Debug mode
//
//	scene.SetDebugMode(true)
//
// Debug mode logs assembly and playback steps to stderr, warns about deep
// trees and wide nodes, and prints per-tick player stats.
//
// # ECS integration
//
// [Scene.SetEntityStore] forwards animation lifecycle events. The ecs
// sub-module adapts them to a Donburi world.
package armature

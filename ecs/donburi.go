package ecs

import (
	"github.com/phanxgames/armature"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// AnimationEventType is the Donburi event type for armature animation events.
// Subscribe to this in your ECS systems to learn when a bone starts or
// finishes moving.
var AnimationEventType = events.NewEventType[armature.AnimationEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Animation events are published to AnimationEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) armature.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event armature.AnimationEvent) {
	AnimationEventType.Publish(s.world, event)
}

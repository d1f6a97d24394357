package entityplus_test

import (
	"fmt"

	"github.com/entityplus/entityplus"
)

// Position is a simple 2D-coordinate component.
type Position struct {
	X, Y float64
}

// Velocity is a simple 2D-movement component.
type Velocity struct {
	X, Y float64
}

// Alive marks an entity as active in the simulation.
type Alive struct{}

// Example_basic shows entity creation, component assignment, tag toggling,
// and a filtered query over a manager's population.
func Example_basic() {
	position := entityplus.NewComponent[Position]("position")
	velocity := entityplus.NewComponent[Velocity]("velocity")
	alive := entityplus.NewTag[Alive]("alive")

	manager := entityplus.NewManager(
		entityplus.NewComponentList(position, velocity),
		entityplus.NewTagList(alive),
	)

	player := manager.Create()
	position.Add(manager, &player, Position{X: 10, Y: 20})
	velocity.Add(manager, &player, Velocity{X: 1, Y: 2})
	alive.Set(manager, &player, true)

	rock := manager.Create()
	position.Add(manager, &rock, Position{X: 0, Y: 0})

	moving := manager.GetEntities(position, velocity)
	fmt.Println(len(moving))

	entityplus.ForEach1(manager, position, nil, func(h entityplus.Handle, p *Position) bool {
		p.X++
		return true
	})

	p, _ := position.Get(manager, &player)
	fmt.Println(p.X)

	// Output:
	// 1
	// 11
}

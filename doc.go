/*
Package entityplus provides a header-only-style Entity-Component-System
(ECS) container for games and simulations.

EntityPlus offers a data-oriented approach to modeling game objects as
compositions of small data pieces (components) plus boolean markers (tags),
and iterating efficiently over the subset of entities that hold a
particular combination of them. It is built on a sparse, per-component-type
storage scheme: each component type gets its own ordered holder keyed by
entity id, so a query that filters on several types only ever walks the
smallest matching holder.

Core Concepts:

  - Entity: identified by a Handle, a cheap-to-copy reference into a Manager.
  - Component: a data value of a user type, attached to at most one entity.
  - Tag: a boolean marker typed by an empty user type; carries no value.
  - Manager: owns every entity, component value, and tag bit; the only type
    that can mutate them.

Basic Usage:

	// Declare component and tag descriptors once, at package scope.
	position := entityplus.NewComponent[Position]("Position")
	velocity := entityplus.NewComponent[Velocity]("Velocity")
	frozen := entityplus.NewTag[Frozen]("Frozen")

	// Build a manager around a closed list of them.
	mgr := entityplus.Factory.NewManager(
		entityplus.Factory.NewComponentList(position, velocity),
		entityplus.Factory.NewTagList(frozen),
	)

	// Create entities and attach components.
	h := mgr.Create()
	position.Add(mgr, &h, Position{X: 10, Y: 20})
	velocity.Add(mgr, &h, Velocity{X: 1, Y: 2})

	// Query entities and process them.
	entityplus.ForEach2(mgr, position, velocity, nil, func(h entityplus.Handle, pos *Position, vel *Velocity) bool {
		pos.X += vel.X
		pos.Y += vel.Y
		return true
	})

EntityPlus is single-threaded and holds no internal synchronization: callers
must externally serialize mutation against any other access to the same
Manager, exactly like the library it descends from.
*/
package entityplus

// Package box provides the Box aggregate, a physical packing container.
//
// A box owns the ordered list of product units packed into it (insertion
// order is packing order) and keeps each unit's box back-reference in sync.
// Once a box is assigned to a shipment it is locked: its contents may not
// change until the shipment releases it.
//
// Packing states:
//
//	CREATED ──AssignToShipment──> PACKED
//	   ^                             │
//	   └─────RemoveFromShipment──────┘
package box

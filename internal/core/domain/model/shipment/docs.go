// Package shipment provides the Shipment aggregate: a group of boxes
// dispatched together.
//
// The package includes:
//   - Shipment: the aggregate root owning its box memberships
//   - Status: the CREATED -> SHIPPED state machine
//
// Key business rules:
//   - boxes are added and removed only while the shipment is CREATED
//   - an empty box cannot join a shipment
//   - a box assigned to another shipment cannot join
//   - an empty shipment cannot be shipped
//   - SHIPPED is terminal
//
// The note stays editable after shipping.
package shipment

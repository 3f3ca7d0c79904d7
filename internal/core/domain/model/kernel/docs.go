// Package kernel holds the value objects shared by every aggregate of the
// packing and shipping domain.
//
// Identifier value types wrap fixed-format strings and are validated once,
// at construction:
//   - UserCode (3, [A-Z0-9])
//   - ProductNumber (8, [A-Z0-9])
//   - SKU (13, [A-Z0-9]): ProductNumber(8) + color(3) + size(2)
//   - SerialNumber (4 digits)
//   - RfidTag (17, [A-Z0-9])
//   - BoxNumber (13, [A-Z0-9]): "B" + code(3) + year(4) + serial(5)
//   - ShipmentNumber (16, [A-Z0-9])
//
// Entities trust constructed identifiers and never re-check their format.
// All identifiers are immutable and compare by value with IsEqual.
//
// UUID identifies users and actors.
package kernel

// Package services provides domain services that synthesize identifiers and
// build new aggregates, plus the audit trail and password policy shared by
// the workflow operations.
//
// The package includes:
//   - IdentifierDerivationStrategy: how an RFID tag is derived from SKU and serial
//   - RfidGenerator: builds unsaved ProductRfid entities and rejects duplicates
//   - BoxGenerator: allocates the next box numbers under a code and year
//   - ShipmentGenerator: synthesizes collision-free shipment numbers
//   - AuditTrail: records one audit entry per logical action
//   - ValidatePasswordStrength: the password rules applied before hashing
//
// Generators never persist what they build. Persistence and the final
// uniqueness check belong to the caller's unit of work.
package services

// Package models defines the core domain models for splitledger.
//
// # Models
//
//   - User: a login identity. Owns every other record it creates.
//   - Ledger: an account holding transactions, with a cached running balance.
//   - Person: someone money moves to or from, optionally linked to a User.
//   - Group: a reusable set of persons.
//   - Project: a cost-splitting event collecting a fixed amount per participant.
//   - ProjectParticipant: one person's payment/refund state within a project.
//   - Transaction: a signed, immutable movement of money on one ledger.
//
// # Conventions
//
// IDs are UUID strings. Timestamps are unix seconds; an optional timestamp
// is zero when unset. Optional references are empty strings when unset.
// Monetary values are money.Amount minor units.
//
// Updates go through typed update structs (LedgerUpdate, PersonUpdate, ...)
// whose nil fields are left untouched, so each entity lists exactly which
// fields may change after creation.
package models

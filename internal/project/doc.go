// Package project persists estimating jobs and their derivation
// snapshots.
//
// A project owns a set of detected rooms (replaced wholesale each time
// detection re-runs) and an append-only history of estimates. Each
// estimate snapshot freezes the device counts, panel schedule,
// compliance report and takeoff that were derived from the rooms at
// that moment, so a quoted job stays reproducible even after the rule
// tables change.
//
// # Key Types
//
//   - Project: one dwelling being estimated
//   - Room: a persisted detected room, convertible back to the
//     derivation input via Detected()
//   - Estimate: an immutable derivation snapshot
//   - Repository: persistence interface, implemented by
//     SQLiteRepository
//
// Derived artifacts are stored as JSON columns. They are read back for
// display only; re-derivation always starts from the rooms.
package project

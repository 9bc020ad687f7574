// Package cec derives minimum electrical device requirements for detected
// rooms under the Canadian Electrical Code (CEC 2021).
//
// # Architecture
//
//	DetectedRoom list (external detector)
//	        │
//	        ▼
//	┌─────────────────────┐     ┌──────────────────────┐
//	│  DevicesForRoom     │────▶│  RoomRequirements    │
//	│  (per-room rules)   │     │  (static catalog)    │
//	└─────────┬───────────┘     └──────────────────────┘
//	          │ DeviceCount per room
//	          ▼
//	┌─────────────────────┐
//	│  WholeHouseDevices  │  + exterior, doorbell, thermostat,
//	│  (aggregation)      │    panel board, data/TV, smoke coverage
//	└─────────┬───────────┘
//	          │
//	          ▼
//	  aggregated DeviceCount → estimator / panel schedule
//
// # Key Types
//
//   - RoomType: closed set of standardised room categories.
//   - RoomRequirement: one static catalog record per category holding
//     receptacle minimums, spacing rules, lighting, switching, and
//     protection flags with the CEC rule numbers they come from.
//   - DeviceCount: symbol → non-negative quantity map with key-wise
//     merge semantics.
//
// # Determinism
//
// Every function in this package is pure: static tables are read-only
// after initialisation, no I/O occurs, and identical input always yields
// an identical device map. Unknown room categories degrade to a minimal
// default set instead of returning errors.
package cec

// Package kernel provides the value objects shared by the dispatch domain model.
//
// The package includes:
//   - UUID: identifier of aggregates (orders, vehicles, audit entries)
//   - Dimensions: a length × width × height bounding box used for fit checks
//   - Date: a calendar day used for delivery dates and date-priority rules
//
// Values are immutable and safe for concurrent use.
package kernel

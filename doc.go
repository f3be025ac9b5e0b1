// Package registration computes period-over-period growth of vehicle
// registrations.
//
// The core is small and pure:
//   - Aggregation: records are bucketed by month or quarter (and optionally by
//     category or manufacturer) into a Series sorted by period start.
//   - Growth: the latest period of a Series is compared with the period one
//     year (YoY) or one quarter (QoQ) earlier, looked up by exact key. The
//     result is a tagged Growth that tells a computed rate apart from an
//     undefined one (empty series, missing comparison, zero comparison).
//
// Around the core, the package provides an immutable Dataset with its Filter,
// a deterministic mock data generator and codecs for CSV, JSONL and JSON
// (with JSONPath selectors). This package serves as the foundational logic for
// the `vreg` command-line tool.
package registration

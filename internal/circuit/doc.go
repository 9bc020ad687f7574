// Package circuit holds the wire-sizing tables, dedicated-load pattern
// matchers, protection classifiers, and load formulas used to turn an
// estimate's item list into a panel schedule.
//
// All tables are read-only after package initialisation and every
// function is pure and total: unknown amperages fall back to the
// smallest standard gauge, unmatched descriptions report "no match",
// and numeric edge cases clamp rather than error. Callers may invoke
// anything here concurrently without coordination.
package circuit

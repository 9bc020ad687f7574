// Package schedule lays out a residential breaker panel from aggregated
// device counts. Dedicated circuits (kitchen, laundry, large appliances)
// are assigned before general lighting and receptacle circuits, and the
// panel is sized from the CEC Rule 8-200 demand calculation.
package schedule

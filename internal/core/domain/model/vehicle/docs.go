// Package vehicle provides the Vehicle aggregate: one delivery truck with its
// volumetric capacity, cargo box, driver and the orders it currently carries.
//
// The driver status is a small state machine of its own. Its guards protect
// orders that are already on the road: a driver cannot stop driving while a
// delivery is unfinished, and cannot go on the road without something to deliver.
//
// assignedOrders and currentLoad are rewritten wholesale by the rebalancer and
// extended by single-order assignment; the per-date load used for decisions is
// always derived from the orders, never from currentLoad.
package vehicle

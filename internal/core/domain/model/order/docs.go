// Package order provides the purchase order aggregate of the dispatch system.
//
// The package includes:
//   - Order: the aggregate root holding identity, line items, the measured load
//     and the vehicle assignment
//   - LineItem: a catalog reference with quantity and pricing mode
//   - Status: the assignment state machine with one central transition check
//   - DeliveryStatus: the driver reported, forward-only delivery progress
//
// Key business rules:
//   - customID and companyName are required, an order has at least one line item
//   - an Assigned order always names a vehicle, any other active status never does
//   - InTransit, Delivered and Completed orders are confirmed by a driver or an
//     administrator and never change through assignment or rebalancing
package order

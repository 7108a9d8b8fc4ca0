// Package courier provides the Courier aggregate: the delivery profile of a
// courier user, its availability for claiming ready orders, its completed
// deliveries counter and its last reported location.
//
// Couriers are never matched to orders by the system. They pick orders from
// the ready pool themselves, and the order state machine checks only that the
// claiming courier is available.
package courier

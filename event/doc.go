// Package event is a small typed publish/subscribe bus for navigation
// events.
//
// The set of events is closed: RoutePlanned, SegmentResolved,
// FloorTransition, Unreachable and PathEnd. Subscribers are registered per
// concrete payload type, so handlers receive typed values:
//
//	bus := event.NewBus()
//	stop := event.Subscribe(bus, func(e event.PathEnd) {
//		fmt.Println("arrived at", e.Position)
//	})
//	defer stop()
//
// Subscribe is constrained to the Payload type set: one of the concrete
// value types, never a pointer to one or the Event interface itself.
package event

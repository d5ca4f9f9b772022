package arrange

import "errors"

// Contract violations. Each indicates a bug upstream of the engine, in the
// style system or in a flow layout, and aborts the whole arrangement.
var (
	// ErrInvalidDock is returned for a dock edge outside top/right/bottom/left.
	ErrInvalidDock = errors.New("invalid dock edge")

	// ErrFlowOrder is returned when a flow layout emits an order that reaches TopOrder.
	ErrFlowOrder = errors.New("flow placement order collides with docked order")

	// ErrFlowFixed is returned when a flow layout emits a fixed placement.
	ErrFlowFixed = errors.New("flow placement marked fixed")

	// ErrForeignWidget is returned when a flow layout places a widget it was not given.
	ErrForeignWidget = errors.New("flow layout placed a widget it was not given")
)

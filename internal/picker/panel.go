package picker

// PanelState is the open/closed flag of the floating selection panel.
//
// Apply and dismiss both map to Close: the panel has no cancel transition
// and closing never rolls back a value already forwarded to OnChange.
type PanelState int

const (
	// PanelClosed hides the navigator and day grid.
	PanelClosed PanelState = iota

	// PanelOpen shows the navigator and day grid below the controls.
	PanelOpen
)

func (p PanelState) String() string {
	if p == PanelOpen {
		return "Open"
	}
	return "Closed"
}

// IsOpen reports whether the panel is shown.
func (p PanelState) IsOpen() bool {
	return p == PanelOpen
}

// Open returns the open state.
func (p PanelState) Open() PanelState {
	return PanelOpen
}

// Close returns the closed state.
func (p PanelState) Close() PanelState {
	return PanelClosed
}

// Toggle flips the state.
func (p PanelState) Toggle() PanelState {
	if p == PanelOpen {
		return PanelClosed
	}
	return PanelOpen
}

// Placement is a preferred position of the panel relative to the controls.
type Placement string

const (
	PlacementDownStartLeft  Placement = "downStartLeft"
	PlacementUpCenter       Placement = "upCenter"
	PlacementLeftCenter     Placement = "leftCenter"
	PlacementRightCenter    Placement = "rightCenter"
	PlacementDownCenter     Placement = "downCenter"
	PlacementUpStartLeft    Placement = "upStartLeft"
	PlacementDownStartRight Placement = "downStartRight"
	PlacementUpStartRight   Placement = "upStartRight"
)

// DefaultPlacements is the order a panel host should try positions in.
var DefaultPlacements = []Placement{
	PlacementDownStartLeft,
	PlacementUpCenter,
	PlacementLeftCenter,
	PlacementRightCenter,
	PlacementDownCenter,
	PlacementUpStartLeft,
	PlacementDownStartRight,
	PlacementUpStartRight,
}

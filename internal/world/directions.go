package world

// Movement directions understood by the game server
const (
	DirectionNorth = "north"
	DirectionSouth = "south"
	DirectionEast  = "east"
	DirectionWest  = "west"
	DirectionUp    = "up"
	DirectionDown  = "down"
	DirectionIn    = "in"
	DirectionOut   = "out"
)

var opposites = map[string]string{
	DirectionNorth: DirectionSouth,
	DirectionSouth: DirectionNorth,
	DirectionEast:  DirectionWest,
	DirectionWest:  DirectionEast,
	DirectionUp:    DirectionDown,
	DirectionDown:  DirectionUp,
	DirectionIn:    DirectionOut,
	DirectionOut:   DirectionIn,
}

// Opposite returns the reverse of direction. Unknown directions reverse to south.
func Opposite(direction string) string {
	if o, ok := opposites[direction]; ok {
		return o
	}
	return DirectionSouth
}

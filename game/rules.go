package game

// Rules holds the constants of a match. A Rules value is shared by every copy
// of a state and must not be mutated once a game starts.
type Rules struct {
	SpeedBoostTurns int // Turns a picked-up speed boost stays active
	OilSlickTurns   int // Turns an unused oil slick is held before it expires
	PaintBombRadius int // Chebyshev radius repainted by a paint bomb
	ItemLifetime    int // Turns an unclaimed item stays on the map
	ItemsPerSpawn   int // Distinct item kinds dropped on every spawn turn
}

func NewStandardRules() *Rules {
	return &Rules{
		SpeedBoostTurns: 5,
		OilSlickTurns:   5,
		PaintBombRadius: 1,
		ItemLifetime:    10,
		ItemsPerSpawn:   2,
	}
}

// ItemKind is the map tag of an item.
type ItemKind byte

const (
	SpeedBoost ItemKind = 'G'
	PaintBomb  ItemKind = 'E'
	OilSlick   ItemKind = 'F'
)

var ItemKinds = [3]ItemKind{SpeedBoost, PaintBomb, OilSlick}

func (k ItemKind) Valid() bool {
	return k == SpeedBoost || k == PaintBomb || k == OilSlick
}

func (k ItemKind) String() string { return string(rune(k)) }

// Item is an unclaimed power-up lying on the map.
type Item struct {
	Pos  Point
	Kind ItemKind
	TTL  int // Turns left before despawn
}

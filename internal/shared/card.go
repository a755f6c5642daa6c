package shared

// Color is the first card attribute.
type Color string

const (
	ColorA Color = "A"
	ColorB Color = "B"
	ColorC Color = "C"
)

// Rank is the number of symbols printed on a card.
type Rank string

const (
	RankOne   Rank = "1"
	RankTwo   Rank = "2"
	RankThree Rank = "3"
)

// Shape is the symbol drawn on a card.
type Shape string

const (
	ShapeA Shape = "A"
	ShapeB Shape = "B"
	ShapeC Shape = "C"
)

// Shade is how the symbols are filled.
type Shade string

const (
	Solid   Shade = "solid"
	Striped Shade = "striped"
	Open    Shade = "open"
)

// Colors returns every color variant.
func Colors() []Color { return []Color{ColorA, ColorB, ColorC} }

// Ranks returns every rank variant.
func Ranks() []Rank { return []Rank{RankOne, RankTwo, RankThree} }

// Shapes returns every shape variant.
func Shapes() []Shape { return []Shape{ShapeA, ShapeB, ShapeC} }

// Shades returns every shade variant.
func Shades() []Shade { return []Shade{Solid, Striped, Open} }

// Card represents a single card of the Set deck.
type Card struct {
	ID    string `json:"id"` // Unique token, unrelated to the attributes
	Color Color  `json:"color"`
	Rank  Rank   `json:"rank"`
	Shape Shape  `json:"shape"`
	Shade Shade  `json:"shade"`
}

// Attributes returns the four attribute values in a fixed order.
func (c Card) Attributes() [4]string {
	return [4]string{string(c.Color), string(c.Rank), string(c.Shape), string(c.Shade)}
}

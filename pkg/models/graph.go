package models

// Node group identifiers used by the dashboard's network view.
const (
	GroupBenchmark = "benchmark"
	GroupCommodity = "commodity"
	GroupCurrency  = "currency"
	GroupPort      = "port"
)

// Node is a single vertex in the knowledge graph. Field names follow the
// vis-network convention so the payload can be handed to the front end
// without translation.
type Node struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Group string `json:"group"`
	Title string `json:"title,omitempty"` // tooltip HTML
	Value int    `json:"value,omitempty"` // visual weight
}

// EdgeColor holds the visual styling of an edge line.
type EdgeColor struct {
	Color   string  `json:"color"`
	Opacity float64 `json:"opacity,omitempty"`
}

// Edge is a directed connection between two node identifiers. Structural
// edges (commodity→benchmark, benchmark→currency) carry only a color;
// resolved links additionally carry a label, rationale tooltip, arrow and
// dash styling.
type Edge struct {
	From   string     `json:"from"`
	To     string     `json:"to"`
	Label  string     `json:"label,omitempty"`
	Title  string     `json:"title,omitempty"` // rationale, e.g. match logic
	Arrows string     `json:"arrows,omitempty"`
	Color  *EdgeColor `json:"color,omitempty"`
	Dashes bool       `json:"dashes,omitempty"`
	Length int        `json:"length,omitempty"` // layout hint
}

// Graph is the assembled node/edge set for visualization.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

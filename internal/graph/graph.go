// Package graph assembles the knowledge graph shown on the dashboard:
// benchmark, commodity, currency and port nodes, connected by structural
// edges from the reference data and the dynamic links produced by the
// entity resolver.
package graph

import (
	"fmt"
	"strings"

	"github.com/opendunl/portlink/pkg/models"
)

// Visual weights per node group.
const (
	benchmarkWeight = 25
	commodityWeight = 40
	currencyWeight  = 15
	portWeight      = 20
)

// Edge styling for structural edges.
const (
	commodityEdgeColor = "#f97316"
	currencyEdgeColor  = "#10b981"
	currencyEdgeLength = 50
)

// portNameSuffixes are display-name suffixes stripped from port labels.
var portNameSuffixes = []string{" Port Charge", " Disport Charge"}

// Assembler builds the node/edge graph. Whitelist is the symbol map:
// only benchmarks with a mapped ticker become nodes.
type Assembler struct {
	Whitelist map[string]string
}

// New creates an assembler with the given benchmark whitelist.
func New(whitelist map[string]string) *Assembler {
	return &Assembler{Whitelist: whitelist}
}

// Assemble merges the reference records and resolved links into a single
// graph. Nodes are deduplicated by identifier with first-insertion-wins
// attributes; the edge set is the resolved links plus the structural
// commodity→benchmark and benchmark→currency edges. Port nodes appear
// only for ports that are the target of at least one resolved link, so
// no edge in the result dangles.
func (a *Assembler) Assemble(ports []models.Port, benchmarks []models.Benchmark, links []models.Edge) models.Graph {
	fmt.Println("... 🕸️  Assembling graph")

	edges := make([]models.Edge, 0, len(links)+2*len(benchmarks))
	edges = append(edges, links...)

	var nodes []models.Node
	seen := make(map[string]struct{})
	addNode := func(n models.Node) {
		if _, ok := seen[n.ID]; ok {
			return
		}
		seen[n.ID] = struct{}{}
		nodes = append(nodes, n)
	}

	for _, b := range benchmarks {
		if _, ok := a.Whitelist[b.ID]; !ok {
			continue
		}

		addNode(models.Node{
			ID:    b.ID,
			Label: b.Symbol,
			Group: models.GroupBenchmark,
			Title: fmt.Sprintf("<b>%s</b><br>ID: %s", b.Description, b.ID),
			Value: benchmarkWeight,
		})

		addNode(models.Node{
			ID:    b.Commodity,
			Label: b.Commodity,
			Group: models.GroupCommodity,
			Value: commodityWeight,
		})
		edges = append(edges, models.Edge{
			From:  b.Commodity,
			To:    b.ID,
			Color: &models.EdgeColor{Color: commodityEdgeColor},
		})

		addNode(models.Node{
			ID:    b.Currency,
			Label: b.Currency,
			Group: models.GroupCurrency,
			Value: currencyWeight,
		})
		edges = append(edges, models.Edge{
			From:   b.ID,
			To:     b.Currency,
			Color:  &models.EdgeColor{Color: currencyEdgeColor},
			Length: currencyEdgeLength,
		})
	}

	// Port nodes only for ports some link resolved to.
	linked := make(map[string]struct{}, len(links))
	for _, l := range links {
		linked[l.To] = struct{}{}
	}
	for _, p := range ports {
		if _, ok := linked[p.ID]; !ok {
			continue
		}
		addNode(models.Node{
			ID:    p.ID,
			Label: portLabel(p.Name),
			Group: models.GroupPort,
			Title: fmt.Sprintf("<b>%s</b><br>Region: %s", p.Name, p.Region),
			Value: portWeight,
		})
	}

	return models.Graph{Nodes: nodes, Edges: edges}
}

// portLabel strips the known charge-record suffixes from a port name.
func portLabel(name string) string {
	for _, suffix := range portNameSuffixes {
		name = strings.ReplaceAll(name, suffix, "")
	}
	return name
}

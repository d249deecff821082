package resolve

import (
	"fmt"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/opendunl/portlink/pkg/models"
)

// RelationLabel is the fixed label carried by every resolved link.
const RelationLabel = "Pricing Location"

// linkColor is the fixed styling for resolved links.
var linkColor = models.EdgeColor{Color: "#64748b", Opacity: 0.6}

// Collision records two ports whose names normalize to the same string.
// The lookup keeps the later port (last-write-wins); the earlier mapping
// is dropped and reported here instead of silently disappearing.
type Collision struct {
	Normalized string `json:"normalized"`
	KeptID     string `json:"kept_id"`
	DroppedID  string `json:"dropped_id"`
}

// Result is the output of a resolution pass.
type Result struct {
	Links      []models.Edge
	Collisions []Collision
}

// Resolver fuzzy-matches benchmark descriptions against port names and
// emits at most one link per benchmark.
type Resolver struct {
	norm      *Normalizer
	threshold int  // accept only score > threshold (strict)
	Quiet     bool // suppress per-link progress output
}

// New creates a resolver with the given normalizer and confidence
// threshold. A nil normalizer uses the default noise tokens.
func New(norm *Normalizer, threshold int) *Resolver {
	if norm == nil {
		norm = NewNormalizer(nil)
	}
	return &Resolver{norm: norm, threshold: threshold}
}

// Resolve links each benchmark to its best-matching port. The similarity
// measure is a partial token-sort ratio in [0,100]: it rewards substring
// overlap regardless of word order, so "Spore Gasoil" scores high against
// "Gasoil FOB Spore Cargo". A link is emitted only when the best score
// strictly exceeds the threshold; benchmarks with no qualifying match
// simply produce no link. Benchmarks whose description is empty after
// cleaning are skipped, as are ports with empty cleaned names.
//
// Ties between equal scores keep the candidate encountered first in port
// order. This is implementation-defined, not a stability guarantee.
func (r *Resolver) Resolve(benchmarks []models.Benchmark, ports []models.Port) Result {
	if !r.Quiet {
		fmt.Println("... 🧠 Running entity resolution on locations")
	}

	lookup, candidates, collisions := r.buildLookup(ports)

	links := make([]models.Edge, 0, len(benchmarks))
	for _, b := range benchmarks {
		desc := r.norm.Clean(b.Description)
		if desc == "" {
			continue
		}

		bestScore := -1
		bestName := ""
		for _, name := range candidates {
			if name == "" {
				continue
			}
			score := fuzzy.PartialTokenSortRatio(desc, name)
			if score > bestScore {
				bestScore = score
				bestName = name
			}
		}

		if bestName == "" || bestScore <= r.threshold {
			continue
		}

		portID := lookup[bestName]
		if !r.Quiet {
			fmt.Printf("   🔗 Linked %q <--> %q (score: %d)\n", b.Symbol, bestName, bestScore)
		}

		color := linkColor
		links = append(links, models.Edge{
			From:   b.ID,
			To:     portID,
			Label:  RelationLabel,
			Title:  fmt.Sprintf("Match Logic: Found '%s' in '%s'", bestName, b.Description),
			Arrows: "to",
			Color:  &color,
			Dashes: true,
		})
	}

	return Result{Links: links, Collisions: collisions}
}

// buildLookup maps normalized port names to port ids. When two ports
// normalize identically the later one overwrites the earlier (last-write-
// wins); every overwrite is reported as a Collision.
func (r *Resolver) buildLookup(ports []models.Port) (map[string]string, []string, []Collision) {
	lookup := make(map[string]string, len(ports))
	candidates := make([]string, 0, len(ports))
	var collisions []Collision

	for _, p := range ports {
		name := r.norm.Clean(p.Name)
		if prev, ok := lookup[name]; ok {
			collisions = append(collisions, Collision{
				Normalized: name,
				KeptID:     p.ID,
				DroppedID:  prev,
			})
		} else {
			candidates = append(candidates, name)
		}
		lookup[name] = p.ID
	}
	return lookup, candidates, collisions
}

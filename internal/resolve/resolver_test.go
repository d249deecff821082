package resolve

import (
	"testing"

	"github.com/opendunl/portlink/pkg/models"
)

func port(id, name string) models.Port {
	return models.Port{ID: id, Name: name}
}

func benchmark(id, symbol, desc string) models.Benchmark {
	return models.Benchmark{ID: id, Symbol: symbol, Description: desc}
}

func quietResolver(threshold int) *Resolver {
	r := New(nil, threshold)
	r.Quiet = true
	return r
}

func TestResolveLinksBenchmarkToPort(t *testing.T) {
	r := quietResolver(80)

	ports := []models.Port{port("SIN", "Singapore"), port("ROT", "Rotterdam")}
	benchmarks := []models.Benchmark{
		benchmark("B1", "GO-SIN", "Singapore Gasoil FOB Cargo"),
	}

	result := r.Resolve(benchmarks, ports)
	if len(result.Links) != 1 {
		t.Fatalf("expected 1 link, got %d", len(result.Links))
	}

	l := result.Links[0]
	if l.From != "B1" || l.To != "SIN" {
		t.Errorf("link %s→%s, want B1→SIN", l.From, l.To)
	}
	if l.Label != RelationLabel {
		t.Errorf("label = %q, want %q", l.Label, RelationLabel)
	}
	if l.Arrows != "to" || !l.Dashes {
		t.Errorf("link styling wrong: arrows=%q dashes=%v", l.Arrows, l.Dashes)
	}
	if l.Color == nil || l.Color.Color != "#64748b" {
		t.Errorf("link color = %+v", l.Color)
	}
	// Rationale embeds the matched name and the original description.
	wantTitle := "Match Logic: Found 'Singapore' in 'Singapore Gasoil FOB Cargo'"
	if l.Title != wantTitle {
		t.Errorf("title = %q, want %q", l.Title, wantTitle)
	}
}

func TestResolveAtMostOneLinkPerBenchmark(t *testing.T) {
	r := quietResolver(80)

	// Both ports match the description to some degree; only the best wins.
	ports := []models.Port{port("SIN", "Singapore"), port("SIN2", "Singapore Harbour")}
	benchmarks := []models.Benchmark{benchmark("B1", "GO", "Singapore Gasoil")}

	result := r.Resolve(benchmarks, ports)
	if len(result.Links) != 1 {
		t.Fatalf("expected exactly 1 link, got %d", len(result.Links))
	}
}

func TestResolveNoMatchProducesNoLink(t *testing.T) {
	r := quietResolver(80)

	ports := []models.Port{port("ROT", "Rotterdam")}
	benchmarks := []models.Benchmark{benchmark("B1", "ZW", "Wheat US Gulf Export")}

	result := r.Resolve(benchmarks, ports)
	for _, l := range result.Links {
		if l.From == "B1" {
			t.Errorf("unexpected link for unmatched benchmark: %+v", l)
		}
	}
}

func TestResolveThresholdIsStrict(t *testing.T) {
	// A perfect match scores 100. With threshold 100, score > threshold
	// never holds, so even identical strings produce no link.
	r := quietResolver(100)

	ports := []models.Port{port("SIN", "Singapore")}
	benchmarks := []models.Benchmark{benchmark("B1", "GO", "Singapore")}

	result := r.Resolve(benchmarks, ports)
	if len(result.Links) != 0 {
		t.Fatalf("score equal to threshold must not link, got %d links", len(result.Links))
	}

	// The same pair clears a lower threshold.
	r = quietResolver(99)
	result = r.Resolve(benchmarks, ports)
	if len(result.Links) != 1 {
		t.Fatalf("score above threshold must link, got %d links", len(result.Links))
	}
}

func TestResolveTokenOrderInsensitive(t *testing.T) {
	r := quietResolver(80)

	// All tokens of the cleaned port name appear in the description,
	// just in a different order and surrounded by noise.
	ports := []models.Port{port("SPG", "Spore Gasoil")}
	benchmarks := []models.Benchmark{benchmark("B1", "GO", "Gasoil FOB Spore Cargo")}

	result := r.Resolve(benchmarks, ports)
	if len(result.Links) != 1 {
		t.Fatalf("expected word-order-insensitive match, got %d links", len(result.Links))
	}
	if result.Links[0].To != "SPG" {
		t.Errorf("link target = %s, want SPG", result.Links[0].To)
	}
}

func TestResolveEmptyStringsDoNotCrash(t *testing.T) {
	r := quietResolver(80)

	ports := []models.Port{port("P1", ""), port("SIN", "Singapore")}
	benchmarks := []models.Benchmark{
		benchmark("B1", "X", ""),
		benchmark("B2", "GO", "Singapore Gasoil"),
	}

	result := r.Resolve(benchmarks, ports)
	// The pass continues past the empty records and still links B2.
	found := false
	for _, l := range result.Links {
		if l.From == "B2" && l.To == "SIN" {
			found = true
		}
		if l.From == "B1" && l.To == "SIN" {
			t.Errorf("empty description must not link to a real port")
		}
	}
	if !found {
		t.Error("expected B2→SIN link despite empty records in the batch")
	}
}

func TestBuildLookupLastWriteWinsWithCollisionReport(t *testing.T) {
	r := quietResolver(80)

	// Both normalize to "Rotterdam".
	ports := []models.Port{
		port("ROT1", "Rotterdam Port Charge"),
		port("ROT2", "Rotterdam"),
	}

	lookup, candidates, collisions := r.buildLookup(ports)
	if got := lookup["Rotterdam"]; got != "ROT2" {
		t.Errorf("lookup[Rotterdam] = %s, want ROT2 (last write wins)", got)
	}
	if len(candidates) != 1 {
		t.Errorf("candidates = %v, want a single deduplicated name", candidates)
	}
	if len(collisions) != 1 {
		t.Fatalf("expected 1 collision, got %d", len(collisions))
	}
	c := collisions[0]
	if c.Normalized != "Rotterdam" || c.KeptID != "ROT2" || c.DroppedID != "ROT1" {
		t.Errorf("collision = %+v", c)
	}
}

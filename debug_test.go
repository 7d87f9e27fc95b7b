package overscroll

import "testing"

func TestStatsString(t *testing.T) {
	s := Stats{Compiles: 1, Created: 12, Skipped: 30}
	want := "compiles: 1 | created: 12 | skipped: 30"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestStatsSharedCounters(t *testing.T) {
	var c factoryCounters
	c.created.Add(2)
	c.skipped.Add(5)
	got := c.stats(1)
	if got != (Stats{Compiles: 1, Created: 2, Skipped: 5}) {
		t.Errorf("stats = %+v", got)
	}
}

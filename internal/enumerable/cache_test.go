package enumerable

import (
	"sync"
	"testing"
)

type onceList struct{ items []string }

func (l onceList) All() func(func(string) bool) {
	return func(yield func(string) bool) {
		for _, s := range l.items {
			if !yield(s) {
				return
			}
		}
	}
}

func TestSynthesisIdempotence(t *testing.T) {
	c := onceList{items: []string{"a", "b"}}
	if _, err := Count(c, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	before := locatorProbes.Load()
	for i := 0; i < 100; i++ {
		if n, err := Count(c, 5); err != nil || n != 2 {
			t.Fatalf("expected 2, got %d (%v)", n, err)
		}
	}
	if d := locatorProbes.Load() - before; d != 0 {
		t.Fatalf("expected no re-discovery for a cached type, got %d probes", d)
	}
}

func TestContainsIdempotence(t *testing.T) {
	c := onceList{items: []string{"a", "b"}}
	if _, err := Contains(c, "a", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	before := locatorProbes.Load()
	for i := 0; i < 50; i++ {
		if ok, err := Contains(c, "b", nil); err != nil || !ok {
			t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
		}
	}
	if d := locatorProbes.Load() - before; d != 0 {
		t.Fatalf("expected no re-discovery for a cached pair, got %d probes", d)
	}
}

type raceList struct{ items []int }

func (l raceList) All() func(func(int) bool) {
	return func(yield func(int) bool) {
		for _, v := range l.items {
			if !yield(v) {
				return
			}
		}
	}
}

// A previously-unseen runtime type reached through an interface must be
// synthesized exactly once no matter how many goroutines race to first use.
func TestConcurrentFirstUseSynthesizesOnce(t *testing.T) {
	before := locatorProbes.Load()

	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			var c any = raceList{items: []int{1, 2, 3}}
			n, err := Count(c, 10)
			if err != nil || n != 3 {
				t.Errorf("expected 3, got %d (%v)", n, err)
			}
		}()
	}
	close(start)
	wg.Wait()

	if d := locatorProbes.Load() - before; d != 1 {
		t.Fatalf("expected exactly one synthesis, got %d", d)
	}
}

func TestDynCacheDoubleCheckedInsert(t *testing.T) {
	var dc dynCache[string, int]
	calls := 0
	for i := 0; i < 3; i++ {
		v, err := dc.lookup("k", func(string) (int, error) {
			calls++
			return 7, nil
		})
		if err != nil || v != 7 {
			t.Fatalf("expected 7, got %d (%v)", v, err)
		}
	}
	if calls != 1 {
		t.Fatalf("expected a single synthesis, got %d", calls)
	}
}

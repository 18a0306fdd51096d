package binding_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/km-arc/go-bindery/binding"
	"github.com/km-arc/go-bindery/refs"
	"github.com/km-arc/go-bindery/scope"
)

type box struct{ n int }

// reclaimMaker is a retention policy whose references can be dropped on
// demand, standing in for GC-driven reclamation.
type reclaimMaker struct {
	mu   sync.Mutex
	refs []*reclaimRef
}

func (m *reclaimMaker) Name() string { return "reclaimable" }

func (m *reclaimMaker) Make(create func() (any, error)) (any, refs.Reference, error) {
	v, err := create()
	if err != nil {
		return nil, nil, err
	}
	r := &reclaimRef{v: v}
	m.mu.Lock()
	m.refs = append(m.refs, r)
	m.mu.Unlock()
	return v, r, nil
}

func (m *reclaimMaker) reclaimAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.refs {
		r.reclaim()
	}
}

type reclaimRef struct {
	mu   sync.Mutex
	v    any
	gone bool
}

func (r *reclaimRef) Get() (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.gone {
		return nil, false
	}
	return r.v, true
}

func (r *reclaimRef) reclaim() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gone = true
	r.v = nil
}

// ── caching semantics ───────────────────────────────────────────────────────

func TestMultiton_OneInstancePerArgument(t *testing.T) {
	b := binding.NewMultiton(func(_ binding.ResolutionContext, n int) (*box, error) {
		return &box{n: n}, nil
	})
	f := b.GetFactory(binding.ResolutionContext{}, binding.Key{})

	one1, _ := f(1)
	two, _ := f(2)
	one2, _ := f(1)

	if one1 != one2 {
		t.Error("same argument should return the cached instance")
	}
	if one1 == two {
		t.Error("distinct arguments should get distinct instances")
	}
	if two.(*box).n != 2 {
		t.Errorf("instance built from wrong argument: %+v", two)
	}
}

func TestMultiton_CreatorRunsOncePerArgument(t *testing.T) {
	calls := map[int]int{}
	b := binding.NewMultiton(func(_ binding.ResolutionContext, n int) (*box, error) {
		calls[n]++
		return &box{n: n}, nil
	})
	f := b.GetFactory(binding.ResolutionContext{}, binding.Key{})

	for _, arg := range []int{1, 2, 1, 2, 1} {
		if _, err := f(arg); err != nil {
			t.Fatalf("factory(%d): %v", arg, err)
		}
	}

	if calls[1] != 1 || calls[2] != 1 {
		t.Errorf("creator calls per argument = %v, want one each", calls)
	}
}

func TestMultiton_ConcurrentSameArgument_SingleCreation(t *testing.T) {
	var calls atomic.Int32
	b := binding.NewMultiton(func(_ binding.ResolutionContext, n int) (*box, error) {
		calls.Add(1)
		return &box{n: n}, nil
	})
	f := b.GetFactory(binding.ResolutionContext{}, binding.Key{})

	const n = 48
	results := make([]any, n)
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			v, err := f(7)
			if err != nil {
				t.Errorf("factory: %v", err)
				return
			}
			results[i] = v
		}(i)
	}
	close(start)
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Errorf("creator ran %d times, want 1", got)
	}
	for i := 1; i < n; i++ {
		if results[i] != results[0] {
			t.Fatalf("caller %d observed a different instance", i)
		}
	}
}

func TestMultiton_FailedCreationIsRetryable(t *testing.T) {
	boom := errors.New("boom")
	fail := true
	b := binding.NewMultiton(func(_ binding.ResolutionContext, n int) (*box, error) {
		if fail {
			return nil, boom
		}
		return &box{n: n}, nil
	})
	f := b.GetFactory(binding.ResolutionContext{}, binding.Key{})

	if _, err := f(1); !errors.Is(err, boom) {
		t.Fatalf("got %v, want the creator error", err)
	}

	fail = false
	v, err := f(1)
	if err != nil {
		t.Fatalf("retry after failure: %v", err)
	}
	if v.(*box).n != 1 {
		t.Errorf("unexpected instance %+v", v)
	}
}

// ── retention & scoping ─────────────────────────────────────────────────────

func TestMultiton_ReclaimedValueIsRecreated(t *testing.T) {
	maker := &reclaimMaker{}
	calls := 0
	b := binding.NewMultiton(func(_ binding.ResolutionContext, n int) (*box, error) {
		calls++
		return &box{n: n}, nil
	}, binding.WithRef(maker))
	f := b.GetFactory(binding.ResolutionContext{}, binding.Key{})

	first, _ := f(1)
	again, _ := f(1)
	if first != again {
		t.Fatal("live value should be reused")
	}

	maker.reclaimAll()

	recreated, err := f(1)
	if err != nil {
		t.Fatalf("factory after reclaim: %v", err)
	}
	if recreated == first {
		t.Error("reclaimed value should have been recreated")
	}
	if calls != 2 {
		t.Errorf("creator ran %d times, want 2", calls)
	}
}

func TestMultiton_ContextScopePartitionsCache(t *testing.T) {
	sessions := scope.NewContextScope()
	b := binding.NewMultiton(func(_ binding.ResolutionContext, n int) (*box, error) {
		return &box{n: n}, nil
	}, binding.InScope(sessions))

	fA := b.GetFactory(binding.ResolutionContext{Value: "session-a"}, binding.Key{})
	fB := b.GetFactory(binding.ResolutionContext{Value: "session-b"}, binding.Key{})

	inA, _ := fA(1)
	inB, _ := fB(1)
	inAAgain, _ := fA(1)

	if inA == inB {
		t.Error("distinct contexts should not share cached instances")
	}
	if inA != inAAgain {
		t.Error("same context should reuse its cached instance")
	}
}

// ── diagnostics ─────────────────────────────────────────────────────────────

func TestMultiton_Names(t *testing.T) {
	plain := binding.NewMultiton(func(_ binding.ResolutionContext, n int) (*box, error) {
		return nil, nil
	})
	if plain.FactoryName() != "multiton" || plain.FactoryFullName() != "multiton" {
		t.Errorf("got %q / %q", plain.FactoryName(), plain.FactoryFullName())
	}

	weak := binding.NewMultiton(func(_ binding.ResolutionContext, n int) (*box, error) {
		return nil, nil
	}, binding.WithRef(refs.Weak))
	if weak.FactoryFullName() != "multiton(ref = weak)" {
		t.Errorf("got %q, want multiton(ref = weak)", weak.FactoryFullName())
	}
}

package rand

import "testing"

func TestRandomMatchesJava(t *testing.T) {
	if got := NewRandom(0).Int32(); got != -1155484576 {
		t.Fatalf("expected new Random(0).nextInt() = -1155484576, got %d", got)
	}
	if got := NewRandom(42).Int32(); got != -1170105035 {
		t.Fatalf("expected new Random(42).nextInt() = -1170105035, got %d", got)
	}
	if got := NewRandom(0).Float64(); got != 0.730967787376657 {
		t.Fatalf("expected new Random(0).nextDouble() = 0.730967787376657, got %v", got)
	}
	if got := NewRandom(0).Int64(); got != -4962768465676381896 {
		t.Fatalf("expected new Random(0).nextLong() = -4962768465676381896, got %d", got)
	}
}

func TestSkipMatchesSingleSteps(t *testing.T) {
	for _, n := range []int64{1, 2, 3, 17, 1000, 17292} {
		a, b := NewRandom(1551515151585454), NewRandom(1551515151585454)
		a.Skip(n)
		for i := int64(0); i < n; i++ {
			b.next(1)
		}
		if a.State() != b.State() {
			t.Fatalf("skip(%d): expected state %d, got %d", n, b.State(), a.State())
		}
	}
}

func TestSkipNonPositiveIsNoop(t *testing.T) {
	r := NewRandom(7)
	before := r.State()
	r.Skip(0)
	r.Skip(-5)
	if r.State() != before {
		t.Fatalf("expected state to be unchanged, got %d want %d", r.State(), before)
	}
}

func TestInt31nBounds(t *testing.T) {
	r := NewRandom(99)
	for _, n := range []int32{1, 2, 3, 7, 13, 128, 255, 256, 1 << 30, 1<<31 - 1} {
		for i := 0; i < 200; i++ {
			if v := r.Int31n(n); v < 0 || v >= n {
				t.Fatalf("Int31n(%d) returned out of range value %d", n, v)
			}
		}
	}
}

func TestInt31nPanicsOnInvalidBound(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected Int31n(0) to panic")
		}
	}()
	NewRandom(1).Int31n(0)
}

func TestRangeInclusive(t *testing.T) {
	r := NewRandom(3)
	seen := map[int32]bool{}
	for i := 0; i < 500; i++ {
		v := r.Range(-2, 2)
		if v < -2 || v > 2 {
			t.Fatalf("Range(-2, 2) returned %d", v)
		}
		seen[v] = true
	}
	if len(seen) != 5 {
		t.Fatalf("expected all 5 values to be produced, got %v", seen)
	}
	if v := r.Range(4, 4); v != 4 {
		t.Fatalf("expected degenerate range to return its bound, got %d", v)
	}
}

func TestNewRandomRawSkipsScramble(t *testing.T) {
	r := NewRandomRaw(Scramble(42))
	if got := r.Int32(); got != -1170105035 {
		t.Fatalf("expected raw state to behave like new Random(42), got %d", got)
	}
}

func TestCombineIdentity(t *testing.T) {
	l := JavaLCG.Combine(1)
	if l != JavaLCG {
		t.Fatalf("expected Combine(1) to equal the single step, got %+v", l)
	}
	two := JavaLCG.Combine(2)
	if got, want := two.Next(12345), JavaLCG.Next(JavaLCG.Next(12345)); got != want {
		t.Fatalf("expected Combine(2) step %d, got %d", want, got)
	}
}

package glcontext

import "testing"

func TestBusSubscribe(t *testing.T) {
	b := NewBus()
	gl := &fakeContext{}

	var got []RenderingContext
	b.Subscribe(func(c RenderingContext) { got = append(got, c) })

	b.ContextChanged(gl)
	if len(got) != 1 || got[0] != RenderingContext(gl) {
		t.Fatalf("subscriber received %v, want the emitted handle once", got)
	}
}

func TestBusDeliveryOrder(t *testing.T) {
	b := NewBus()

	var order []int
	b.Subscribe(func(RenderingContext) { order = append(order, 1) })
	b.Subscribe(func(RenderingContext) { order = append(order, 2) })
	b.Subscribe(func(RenderingContext) { order = append(order, 3) })

	b.ContextChanged(&fakeContext{})

	want := []int{1, 2, 3}
	if len(order) != len(want) {
		t.Fatalf("deliveries = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("deliveries = %v, want subscription order %v", order, want)
		}
	}
}

func TestBusCancel(t *testing.T) {
	b := NewBus()

	calls := 0
	cancel := b.Subscribe(func(RenderingContext) { calls++ })

	b.ContextChanged(&fakeContext{})
	cancel()
	b.ContextChanged(&fakeContext{})

	if calls != 1 {
		t.Errorf("calls = %d, want 1 (cancelled after first emit)", calls)
	}
	if b.Len() != 0 {
		t.Errorf("Len() = %d, want 0", b.Len())
	}

	// Cancelling twice is a no-op.
	cancel()
}

func TestBusCancelDuringDelivery(t *testing.T) {
	b := NewBus()

	var cancel2 func()
	got2 := 0
	b.Subscribe(func(RenderingContext) { cancel2() })
	cancel2 = b.Subscribe(func(RenderingContext) { got2++ })

	// The snapshot taken at emit time still delivers to subscriber 2.
	b.ContextChanged(&fakeContext{})
	if got2 != 1 {
		t.Errorf("subscriber cancelled mid-delivery received %d calls, want 1", got2)
	}

	b.ContextChanged(&fakeContext{})
	if got2 != 1 {
		t.Errorf("cancelled subscriber received %d calls after second emit, want 1", got2)
	}
}

func TestBusAsSystemNotifier(t *testing.T) {
	b := NewBus()
	var got RenderingContext
	b.Subscribe(func(c RenderingContext) { got = c })

	modern := &fakeContext2{fakeContext{attrs: ContextAttributes{Stencil: true}}}
	sys := New(&fakeSurface{modern: modern}, b)
	if err := sys.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if got != RenderingContext(modern) {
		t.Error("bus subscriber did not receive the established handle")
	}
}

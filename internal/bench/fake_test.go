package bench_test

import (
	"time"

	"github.com/benbjohnson/clock"

	"github.com/livefir/vdombench/internal/vdom"
)

// fakeRenderer records whether each Render call was a fresh build or an
// update and advances a mock clock by a scripted cost per call.
type fakeRenderer struct {
	clock   *clock.Mock
	cost    func(call int) time.Duration
	mounted vdom.Component

	calls    []string
	renders  int
	unmounts int

	failRender  map[int]error // keyed by render call index
	failUnmount error
}

func newFakeRenderer(mock *clock.Mock, costs ...time.Duration) *fakeRenderer {
	return &fakeRenderer{
		clock: mock,
		cost: func(call int) time.Duration {
			if len(costs) == 0 {
				return 0
			}
			return costs[call%len(costs)]
		},
	}
}

func (f *fakeRenderer) Render(c vdom.Component) error {
	call := f.renders
	f.renders++
	f.clock.Add(f.cost(call))

	if err := f.failRender[call]; err != nil {
		return err
	}

	if f.mounted == nil || !vdom.SameType(f.mounted, c) {
		f.calls = append(f.calls, "fresh")
	} else {
		f.calls = append(f.calls, "update")
	}
	f.mounted = c
	return nil
}

func (f *fakeRenderer) Unmount() error {
	f.unmounts++
	f.calls = append(f.calls, "unmount")
	if f.failUnmount != nil {
		return f.failUnmount
	}
	f.mounted = nil
	return nil
}

func (f *fakeRenderer) Mounted() bool {
	return f.mounted != nil
}

type countingRecorder struct {
	warmup   map[string]int
	measured map[string]int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{warmup: map[string]int{}, measured: map[string]int{}}
}

func (r *countingRecorder) RecordScenario(name string, measured bool) {
	if measured {
		r.measured[name]++
	} else {
		r.warmup[name]++
	}
}

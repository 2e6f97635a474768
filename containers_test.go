package containers_test

import (
	"errors"
	"testing"

	"github.com/npillmayer/containers"
	"github.com/npillmayer/containers/bytestr"
	"github.com/npillmayer/containers/deque"
	"github.com/npillmayer/containers/list"
	"github.com/npillmayer/containers/vector"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func recovered(f func()) (r interface{}) {
	defer func() {
		r = recover()
	}()
	f()
	return nil
}

func TestContractViolationsAcrossContainers(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	cases := map[string]func(){
		"vector.PopBack": func() { vector.New[int]().PopBack() },
		"vector.At":      func() { vector.FromSlice(1).At(1) },
		"bytestr.Erase":  func() { bytestr.New("").Erase(0, 1) },
		"deque.Front":    func() { deque.New[int]().Front() },
		"list.Back":      func() { list.New[int]().Back() },
	}
	for name, f := range cases {
		r := recovered(f)
		if r == nil {
			t.Errorf("%s: expected panic", name)
			continue
		}
		if !containers.IsContractViolation(r) {
			t.Errorf("%s: expected contract violation, got %v", name, r)
		}
		containers.T().Debugf("%s: %v", name, r)
	}
}

func TestOtherPanicsAreNotViolations(t *testing.T) {
	for _, r := range []interface{}{
		nil,
		"some string",
		errors.New("contract violation"),
		containers.ContainerError("contract violation, but unmarked"),
	} {
		if containers.IsContractViolation(r) {
			t.Errorf("expected %v not to count as contract violation", r)
		}
	}
	if !errors.Is(containers.ErrContractViolation, containers.ErrContractViolation) {
		t.Errorf("expected sentinel to match itself")
	}
}

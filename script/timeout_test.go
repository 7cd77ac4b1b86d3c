package script

import (
	"sync"
	"testing"
)

func TestWaitWithTimeoutDelivers(t *testing.T) {

	var mu sync.Mutex
	gen := uint64(1)

	ch := make(chan evalResult, 1)
	ch <- evalResult{log: []string{"done"}}

	log, evalErrs, err := waitWithTimeout(ch, 1, &mu, &gen)
	if err != nil {
		t.Fatal(err)
	}
	if len(evalErrs) != 0 || len(log) != 1 || log[0] != "done" {
		t.Fatal("result should pass through, got", log, evalErrs)
	}

}

func TestWaitWithTimeoutDiscardsStale(t *testing.T) {

	var mu sync.Mutex
	gen := uint64(2) // A newer evaluation has already started.

	ch := make(chan evalResult, 1)
	ch <- evalResult{log: []string{"stale"}}

	log, evalErrs, err := waitWithTimeout(ch, 1, &mu, &gen)
	if err == nil {
		t.Fatal("stale result should be discarded")
	}
	if log != nil || evalErrs != nil {
		t.Fatal("stale result should carry no data, got", log, evalErrs)
	}

}

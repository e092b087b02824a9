// Package protocol implements the hop-by-hop message dissemination engine and
// its three forwarding variants.
//
// One trial on an Engine:
//
//	e := protocol.New(protocol.NewGMBC(4, 0.5, protocol.WithSeed(1)))
//	_ = e.SetGraph(g)
//	_ = e.Init()               // source infected, self envelope queued
//	for done := false; !done; {
//	    _, _ = model.Step()    // instability first
//	    done, _ = e.Step()     // then one hop
//	}
//	fmt.Println(e.Reachability(), e.MsgCount(), e.HopCount())
//
// Each Step consumes the whole frontier. The source's own envelope goes to all
// of its current neighbors; every other envelope goes to the targets the
// Strategy selects. Every target costs one message, and only uninfected
// targets are infected and forwarded on the next hop. Already-infected
// targets still cost a message, so redundancy shows up in MsgCount.
//
// Variants:
//
//	Flood        ("Flooding")  every neighbor except the sender
//	FixedFanout  ("FFG_k")     k uniformly chosen neighbors except the sender
//	GMBC         ("GMBG_k")    k neighbors, those with no known short detour
//	                           from the sender (mbc.INF) first
//
// A fanout larger than the candidate pool is not an error: the whole pool is sent.
//
// Errors:
//
//	ErrNotInitialized  Step before Init
//	ErrAlreadyDone     Step after the frontier emptied
//	ErrNoGraph         no graph bound
//	ErrSourceNotFound  configured source absent, or empty graph
package protocol

package notify

import (
	"sort"
	"sync"
	"testing"
)

func TestCacheUnknownPeer(t *testing.T) {
	c := NewCache[int64](&fakeClock{now: 1000})

	if !c.IsUnknown(1) {
		t.Fatal("expected unknown peer")
	}
	v := c.View(1)
	if !v.Unknown || v.Muted || v.Settings != defaultInputSettings() {
		t.Fatalf("View() = %+v, want unknown default", v)
	}
	if len(c.Peers()) != 0 {
		t.Fatal("lookups must not register peers")
	}
}

func TestCachePerPeerIsolation(t *testing.T) {
	c := NewCache[int64](&fakeClock{now: 1000})

	if !c.ApplyLocal(1, LocalEdit{MuteFor: ptr(100)}) {
		t.Fatal("expected a change")
	}
	if !c.ApplyRemote(2, record(0)) {
		t.Fatal("expected a change")
	}

	if until, ok := c.MuteUntil(1); !ok || until != 1100 {
		t.Fatalf("MuteUntil(1) = %d, %v; want 1100, true", until, ok)
	}
	if _, ok := c.MuteUntil(2); ok {
		t.Fatal("peer 2 should have no mute")
	}
	if !c.View(1).Muted {
		t.Fatal("peer 1 should be muted")
	}
	if c.View(2).Unknown {
		t.Fatal("peer 2 should be known")
	}

	peers := c.Peers()
	sort.Slice(peers, func(i, j int) bool { return peers[i] < peers[j] })
	if len(peers) != 2 || peers[0] != 1 || peers[1] != 2 {
		t.Fatalf("Peers() = %v, want [1 2]", peers)
	}

	c.Forget(1)
	if !c.IsUnknown(1) {
		t.Fatal("forgotten peer should be unknown")
	}
}

func TestCacheSilentAndSerialize(t *testing.T) {
	c := NewCache[string](&fakeClock{now: 1000})

	c.ApplyLocal("a", LocalEdit{SilentPosts: ptr(true)})
	if silent, ok := c.SilentPosts("a"); !ok || !silent {
		t.Fatalf("SilentPosts() = %v, %v; want true, true", silent, ok)
	}
	if got := c.Serialize("a"); got.Flags != InputFlagSilent {
		t.Fatalf("Serialize().Flags = %b, want silent only", got.Flags)
	}
	if got := c.Serialize("b"); got != defaultInputSettings() {
		t.Fatalf("Serialize(unknown) = %+v, want default", got)
	}
}

func TestCacheConcurrentEdits(t *testing.T) {
	c := NewCache[int64](&fakeClock{now: 1000})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.ApplyLocal(int64(i%4), LocalEdit{SilentPosts: ptr(i%2 == 0)})
			c.View(int64(i % 4))
		}(i)
	}
	wg.Wait()

	if len(c.Peers()) != 4 {
		t.Fatalf("expected 4 peers, got %d", len(c.Peers()))
	}
}

func TestCacheApplyRemoteIfUnknown(t *testing.T) {
	c := NewCache[int64](&fakeClock{now: 1000})

	newer := record(FlagMuteUntil)
	newer.MuteUntil = 9000
	c.ApplyRemote(1, newer)

	stale := record(FlagMuteUntil)
	stale.MuteUntil = 5000
	if c.ApplyRemoteIfUnknown(1, stale) {
		t.Fatal("record must not be applied over known settings")
	}
	if until, _ := c.MuteUntil(1); until != 9000 {
		t.Fatalf("MuteUntil(1) = %d, want 9000", until)
	}

	if !c.ApplyRemoteIfUnknown(2, stale) {
		t.Fatal("record should be applied to an unknown peer")
	}
	if until, _ := c.MuteUntil(2); until != 5000 {
		t.Fatalf("MuteUntil(2) = %d, want 5000", until)
	}

	// An empty record still makes the peer known.
	if !c.ApplyRemoteIfUnknown(3, record(0)) || c.IsUnknown(3) {
		t.Fatal("empty record should make an unknown peer known")
	}
}

package notify

import "sync"

// View is a read-only copy of a peer's settings.
type View struct {
	Unknown  bool                    `json:"unknown"`
	Muted    bool                    `json:"muted"`
	Settings InputPeerNotifySettings `json:"settings"`
}

// Cache holds one Settings per peer and serializes access to them.
type Cache[K comparable] struct {
	clock Clock

	mu    sync.Mutex
	peers map[K]*Settings
}

func NewCache[K comparable](clock Clock) *Cache[K] {
	if clock == nil {
		clock = SystemClock
	}
	return &Cache[K]{
		clock: clock,
		peers: make(map[K]*Settings),
	}
}

func (c *Cache[K]) settings(peer K) *Settings {
	s, ok := c.peers[peer]
	if !ok {
		s = NewSettings(c.clock)
		c.peers[peer] = s
	}
	return s
}

func (c *Cache[K]) ApplyRemote(peer K, r PeerNotifySettings) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.settings(peer).ApplyRemote(r)
}

// ApplyRemoteIfUnknown applies r only if the peer has not seen any remote
// record yet. It reports whether r was applied.
func (c *Cache[K]) ApplyRemoteIfUnknown(peer K, r PeerNotifySettings) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.settings(peer)
	if !s.IsUnknown() {
		return false
	}
	s.ApplyRemote(r)
	return true
}

func (c *Cache[K]) ApplyLocal(peer K, edit LocalEdit) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.settings(peer).ApplyLocal(edit)
}

func (c *Cache[K]) IsUnknown(peer K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.peers[peer]
	return !ok || s.IsUnknown()
}

func (c *Cache[K]) MuteUntil(peer K) (int64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if s, ok := c.peers[peer]; ok {
		return s.MuteUntil()
	}
	return 0, false
}

func (c *Cache[K]) SilentPosts(peer K) (bool, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if s, ok := c.peers[peer]; ok {
		return s.SilentPosts()
	}
	return false, false
}

func (c *Cache[K]) Serialize(peer K) InputPeerNotifySettings {
	c.mu.Lock()
	defer c.mu.Unlock()
	if s, ok := c.peers[peer]; ok {
		return s.Serialize()
	}
	return defaultInputSettings()
}

func (c *Cache[K]) View(peer K) View {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.peers[peer]
	if !ok {
		return View{Unknown: true, Settings: defaultInputSettings()}
	}
	return View{
		Unknown:  s.IsUnknown(),
		Muted:    s.IsMuted(c.clock.Now()),
		Settings: s.Serialize(),
	}
}

func (c *Cache[K]) Peers() []K {
	c.mu.Lock()
	defer c.mu.Unlock()
	peers := make([]K, 0, len(c.peers))
	for peer := range c.peers {
		peers = append(peers, peer)
	}
	return peers
}

// Forget drops a peer so that its next lookup starts out unknown again.
func (c *Cache[K]) Forget(peer K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.peers, peer)
}

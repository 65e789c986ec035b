package notices

// Guard tracks which recipients were already dispatched to during one run.
// A failed send still claims the slot, so the same member is never retried
// through a different closed account in the same run. Constructed per run
// and passed into the pipeline; nothing survives across runs.
type Guard struct {
	seen map[string]struct{}
}

func NewGuard() *Guard {
	return &Guard{seen: make(map[string]struct{})}
}

func (g *Guard) Seen(addr string) bool {
	_, ok := g.seen[addr]
	return ok
}

func (g *Guard) Register(addr string) {
	g.seen[addr] = struct{}{}
}

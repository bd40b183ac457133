// Package ids hands out opaque task identifiers.
package ids

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// DefaultPrefix is used for task ids ("todo-<token>").
const DefaultPrefix = "todo"

// Generator produces a unique opaque string on every call.
type Generator interface {
	Generate() string
}

// Random generates prefix-<token> ids from random UUIDs.
//
// Tokens are the first 12 hex digits of a v4 UUID (48 bits). Ids already handed
// out in this session are remembered and never repeated.
type Random struct {
	prefix string
	seen   map[string]struct{}
	// newToken is swapped in tests.
	newToken func() string
}

func NewRandom(prefix string) *Random {
	if strings.TrimSpace(prefix) == "" {
		prefix = DefaultPrefix
	}
	return &Random{
		prefix:   prefix,
		seen:     map[string]struct{}{},
		newToken: uuidToken,
	}
}

func (g *Random) Generate() string {
	for {
		id := g.prefix + "-" + g.newToken()
		if _, ok := g.seen[id]; ok {
			continue
		}
		g.seen[id] = struct{}{}
		return id
	}
}

// Reserve marks id as taken so Generate never returns it.
func (g *Random) Reserve(id string) {
	g.seen[id] = struct{}{}
}

func uuidToken() string {
	s := strings.ReplaceAll(uuid.NewString(), "-", "")
	return s[:12]
}

// Sequence hands out prefix-1, prefix-2, ... and is meant for tests and
// deterministic output.
type Sequence struct {
	prefix string
	next   int
}

func NewSequence(prefix string) *Sequence {
	if strings.TrimSpace(prefix) == "" {
		prefix = DefaultPrefix
	}
	return &Sequence{prefix: prefix, next: 1}
}

func (g *Sequence) Generate() string {
	id := g.prefix + "-" + strconv.Itoa(g.next)
	g.next++
	return id
}

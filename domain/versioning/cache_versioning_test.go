package versioning

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounter(t *testing.T) {
	var c Counter
	assert.Equal(t, uint64(0), c.Current())
	assert.Equal(t, uint64(1), c.Bump())
	assert.Equal(t, uint64(1), c.Current())
}

func TestCounterConcurrentBumps(t *testing.T) {
	var c Counter
	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Bump()
		}()
	}
	wg.Wait()
	assert.Equal(t, uint64(64), c.Current())
}

func TestBuildToken(t *testing.T) {
	token := BuildToken(3, "review:1")

	assert.True(t, strings.HasPrefix(token, `"v3-`))
	assert.True(t, strings.HasSuffix(token, `"`))
	assert.Equal(t, token, BuildToken(3, "review:1"), "deterministic")
	assert.NotEqual(t, token, BuildToken(4, "review:1"), "version changes token")
	assert.NotEqual(t, token, BuildToken(3, "review:2"), "scope changes token")
}

func TestIsCurrent(t *testing.T) {
	token := BuildToken(0, "coffees?")

	assert.True(t, IsCurrent(token, token))
	assert.False(t, IsCurrent("", token))
	assert.False(t, IsCurrent("", ""), "absent token is always stale")
	assert.False(t, IsCurrent(BuildToken(1, "coffees?"), token))
}

func TestCollectionScope(t *testing.T) {
	origin := "Italy"
	empty := ""
	intensity := 7

	a := CollectionScope("coffees", map[string]*string{
		"origin": &origin, "intensity": IntParam(&intensity), "aroma": nil,
	})
	b := CollectionScope("coffees", map[string]*string{
		"intensity": IntParam(&intensity), "aroma": nil, "origin": &origin,
	})
	assert.Equal(t, a, b)
	assert.Equal(t, "coffees?intensity=7&origin=Italy", a)

	unset := CollectionScope("coffees", map[string]*string{"origin": nil})
	blank := CollectionScope("coffees", map[string]*string{"origin": &empty})
	assert.NotEqual(t, unset, blank)

	assert.Equal(t, "review:42", EntityScope("review", "42"))
	assert.Nil(t, IntParam(nil))
}

package dbg

import (
	"fmt"
	"strings"
	"sync"

	"github.com/deardanieldavis/shapetypes-sub000/shapes"
	petname "github.com/dustinkirkland/golang-petname"
)

// This converts shapes into random readable names. It flagrantly leaks memory
// but generates the names lazily, so it's not a problem unless you're
// actually using it. Shapes are values, so two equal shapes share a name.
// That makes it easy to spot the same probe turning up in several results.

var (
	memo   map[string]string
	memoMu sync.Mutex
)

func init() {
	memo = make(map[string]string)
	// Since the ids are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

func Name(s shapes.Shape) string {
	if s == nil {
		return "Ø"
	}
	key := describe(s, false)

	memoMu.Lock()
	defer memoMu.Unlock()
	if r, ok := memo[key]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[key] = r
	return r
}

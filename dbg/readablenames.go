package dbg

import (
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// Readable, memoized names for otherwise anonymous values, mostly the clip
// nodes the boolean engine builds. A node's pointer string is useless when
// eyeballing a dumped ring; a petname is not. Names are generated lazily and
// nondeterministically on purpose: they are labels for one debugging
// session, not identifiers that survive between runs.

var names map[interface{}]string

func init() {
	names = make(map[interface{}]string)
	petname.NonDeterministicMode()
}

// Name returns a human readable name for obj, stable within this run.
func Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}
	if name, ok := names[obj]; ok {
		return name
	}
	name := fmt.Sprintf("%s-%s", strings.ToLower(petname.Adjective()), strings.ToLower(petname.Name()))
	names[obj] = name
	return name
}

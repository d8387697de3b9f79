package dbg

import (
	"fmt"
	"reflect"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// This converts pointers into random readable names, so that log lines from
// the same triangulation run can be picked out at a glance. Every named object
// stays reachable from the memo until it's passed to Forget.

var (
	mu    sync.Mutex
	memo  map[interface{}]string
	title = cases.Title(language.English)
)

func init() {
	memo = make(map[interface{}]string)
	// Since the names are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}
	if v := reflect.ValueOf(obj); v.Kind() == reflect.Ptr && v.IsNil() {
		return "Ø"
	}

	mu.Lock()
	defer mu.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", title.String(petname.Adjective()), title.String(petname.Name()))
	memo[obj] = r
	return r
}

// Drop obj from the memo so it can be collected. Naming it again later gives a
// fresh name.
func Forget(obj interface{}) {
	mu.Lock()
	defer mu.Unlock()
	delete(memo, obj)
}

// Number of objects currently named
func Len() int {
	mu.Lock()
	defer mu.Unlock()
	return len(memo)
}

package assert

import "github.com/oomph-ac/immersion/oerror"

// IsTrue panics with an OomphError if ok is false. It guards programmer errors only, never player input.
func IsTrue(ok bool, message string, args ...interface{}) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}

// Code generated by hand for tests. DO NOT EDIT.

package generated

import "fillmore-labs.com/scopeexit"

func dropped() {
	scopeexit.Exit(func() {}) // want `Guard from Exit is discarded and never fires \(se:dis\)`
}

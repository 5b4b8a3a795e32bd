// Code generated by hand for tests. DO NOT EDIT.

package skipgenerated

import "fillmore-labs.com/scopeexit"

func dropped() {
	scopeexit.Exit(func() {})
}

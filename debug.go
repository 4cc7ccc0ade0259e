// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dkont

import "github.com/hashicorp/go-multierror"

// Invariant is a single named, independently checkable property of a region
// or a running computation — typically used in tests to assert named
// scenarios (identity resume, abort, multi-shot, nested prompts, region
// isolation) rather than asserting on one opaque bool.
type Invariant struct {
	Name  string
	Check func() error
}

// CheckInvariants runs every invariant regardless of earlier failures and
// aggregates every failure into a single error, so a caller sees the full
// set of violations in one report instead of just the first.
func CheckInvariants(invariants ...Invariant) error {
	var result *multierror.Error
	for _, inv := range invariants {
		if err := inv.Check(); err != nil {
			result = multierror.Append(result, errorWithName(inv.Name, err))
		}
	}
	return result.ErrorOrNil()
}

type namedError struct {
	name string
	err  error
}

func (n *namedError) Error() string { return n.name + ": " + n.err.Error() }

func (n *namedError) Unwrap() error { return n.err }

func errorWithName(name string, err error) error {
	return &namedError{name: name, err: err}
}

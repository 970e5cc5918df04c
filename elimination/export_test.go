// SPDX-License-Identifier: MIT

package elimination

// OptionsSnapshot_TestOnly resolves opts against the defaults and returns the
// effective values. Test-only bridge to the unexported Options fields.
func OptionsSnapshot_TestOnly(opts ...Option) (trace, verify bool, maxSteps int) {
	o := gatherOptions(opts...)

	return o.trace, o.verify, o.maxSteps
}

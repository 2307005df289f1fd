// SPDX-License-Identifier: MIT

// Package dynarray: functional configuration for Buffer growth.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
package dynarray

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPolicy is used by Buffer.Append.
	DefaultPolicy = Doubling

	// DefaultFixedIncrement is the number of slots added by the Fixed policy.
	DefaultFixedIncrement = 1000

	// DefaultGrowthNum / DefaultGrowthDen form the Golden growth ratio (3/2).
	DefaultGrowthNum = 3
	DefaultGrowthDen = 2
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicFixedIncrementInvalid = "dynarray: WithFixedIncrement: increment must be > 0"
	panicGrowthRatioInvalid    = "dynarray: WithGrowthRatio: require num > den > 0"
	panicPolicyInvalid         = "dynarray: WithPolicy: unknown policy"
)

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*Options)

// Options stores the effective configuration of a Buffer. Fields are
// unexported; callers configure through ...Option.
type Options struct {
	policy         Policy
	fixedIncrement int
	growthNum      int
	growthDen      int
	hook           func(GrowthEvent)
}

// WithPolicy sets the policy used by Append.
func WithPolicy(p Policy) Option {
	if !p.valid() {
		panic(panicPolicyInvalid)
	}

	return func(o *Options) { o.policy = p }
}

// WithFixedIncrement sets the constant number of slots the Fixed policy adds.
//
// Inputs:
//   - n: increment, must be positive.
//
// Errors:
//   - Panics with a stable message when n <= 0.
func WithFixedIncrement(n int) Option {
	if n <= 0 {
		panic(panicFixedIncrementInvalid)
	}

	return func(o *Options) { o.fixedIncrement = n }
}

// WithGrowthRatio sets the multiplicative factor num/den of the Golden policy.
// The ratio must be strictly greater than one.
//
// Notes:
//   - Ratios close to 1 still terminate: a non-growing product is bumped to
//     cap+1, at the price of more reallocations.
func WithGrowthRatio(num, den int) Option {
	if den <= 0 || num <= den {
		panic(panicGrowthRatioInvalid)
	}

	return func(o *Options) {
		o.growthNum = num
		o.growthDen = den
	}
}

// WithGrowthHook registers f to be called after every reallocation, including
// the first allocation of an empty buffer. A nil f removes the hook.
func WithGrowthHook(f func(GrowthEvent)) Option {
	return func(o *Options) { o.hook = f }
}

// gatherOptions applies user options over the defaults in order
// (last writer wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		policy:         DefaultPolicy,
		fixedIncrement: DefaultFixedIncrement,
		growthNum:      DefaultGrowthNum,
		growthDen:      DefaultGrowthDen,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

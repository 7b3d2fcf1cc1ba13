// Package argon2 implements the Argon2 memory-hard password hashing
// family: Argon2d, Argon2i, Argon2id, and the historical GPU-hardened
// Argon2ds addendum. It computes the core memory-filling function
// described in RFC 9106 and the original Password Hashing Competition
// submission, plus the PHC encoded-string format for storing and
// verifying hashes.
package argon2

import (
	"github.com/opd-ai/argon2go/internal/engine"
)

// Hash runs ctx through the Argon2 memory-filling function and returns
// the resulting tag. It is equivalent to ctx.Run().
func Hash(ctx *Context) ([]byte, error) {
	return ctx.Run()
}

// Run validates ctx, fills working memory according to its cost
// parameters, and returns the derived tag. On any error, ctx.Password
// and ctx.Secret are zeroed if the corresponding Flags bit is set,
// regardless of whether the failure happened before or after
// allocation.
func (ctx *Context) Run() (tag []byte, err error) {
	defer func() {
		if ctx.Flags&ClearPassword != 0 {
			zero(ctx.Password)
		}
		if ctx.Flags&ClearSecret != 0 {
			zero(ctx.Secret)
		}
	}()

	if err := ctx.Validate(); err != nil {
		return nil, err
	}

	mPrime, laneLength, segmentLength := engine.Geometry(ctx.Memory, ctx.Lanes)

	alloc := ctx.Allocator
	if alloc == nil {
		alloc = defaultAllocator
	}
	bridge := &blockAllocator{alloc: alloc}

	inst, err := engine.New(mPrime, laneLength, segmentLength, ctx.Lanes, ctx.Time,
		engine.Variant(ctx.Variant), engine.Version(ctx.Version), bridge.allocate)
	if err != nil {
		return nil, wrapErr(ErrMemoryAllocation, err)
	}
	defer func() {
		if ctx.Flags&ClearMemory != 0 {
			inst.Wipe()
		}
		bridge.deallocate()
	}()

	if ctx.Flags&PrintInternals != 0 && ctx.Observer != nil {
		inst.Observer = func(pos engine.Position, block *engine.Block) {
			ctx.Observer(Position{Pass: pos.Pass, Lane: pos.Lane, Slice: pos.Slice, Index: pos.Index}, block.ToBytes())
		}
	}

	h0 := engine.PreHash(ctx.Lanes, ctx.TagLength, ctx.Memory, ctx.Time,
		engine.Version(ctx.Version), engine.Variant(ctx.Variant),
		ctx.Password, ctx.Salt, ctx.Secret, ctx.AD)
	inst.Seed(h0)

	threads := ctx.Threads
	if threads == 0 {
		threads = ctx.Lanes
	}
	if err := inst.Run(threads); err != nil {
		return nil, wrapErr(ErrThreadFailure, err)
	}

	return inst.Finalize(ctx.TagLength), nil
}

// Verify reports whether password, under the cost parameters and salt
// recorded in encoded, reproduces the tag encoded carries. It returns
// nil on a match, an *Error with code ErrVerifyMismatch on a clean
// mismatch, ErrIncorrectType if encoded names a different variant than
// the one requested, and a decoding error for a malformed string.
func Verify(encoded string, password []byte, variant Variant) error {
	d, err := Decode(encoded)
	if err != nil {
		return err
	}
	if d.Variant != variant {
		return newErr(ErrIncorrectType)
	}

	ctx := &Context{
		Password:  password,
		Salt:      d.Salt,
		Time:      d.Time,
		Memory:    d.Memory,
		Lanes:     d.Lanes,
		TagLength: uint32(len(d.Tag)),
		Variant:   d.Variant,
		Version:   d.Version,
	}

	got, err := ctx.Run()
	if err != nil {
		return err
	}

	if !bytesEqual(got, d.Tag) {
		return newErr(ErrVerifyMismatch)
	}
	return nil
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// bytesEqual performs a constant-time, full-length byte comparison: every
// byte of both slices is visited regardless of where they first differ.
// Generalized from randomx's fixed 32-byte bytesEqual to an arbitrary tag
// length.
func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	var diff byte
	for i := range a {
		diff |= a[i] ^ b[i]
	}
	return diff == 0
}

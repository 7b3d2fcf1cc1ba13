package argon2

import "github.com/opd-ai/argon2go/internal/engine"

// Variant selects which member of the Argon2 family a Context computes.
type Variant uint32

const (
	VariantArgon2d  Variant = Variant(engine.VariantD)
	VariantArgon2i  Variant = Variant(engine.VariantI)
	VariantArgon2id Variant = Variant(engine.VariantID)
	// VariantArgon2ds is the historical GPU-hardened addendum; it is not
	// part of RFC 9106 and has no PHC identifier of its own ("argon2ds"
	// is this module's own choice, not a registered name).
	VariantArgon2ds Variant = Variant(engine.VariantDS)
)

func (v Variant) String() string {
	switch v {
	case VariantArgon2d:
		return "argon2d"
	case VariantArgon2i:
		return "argon2i"
	case VariantArgon2id:
		return "argon2id"
	case VariantArgon2ds:
		return "argon2ds"
	default:
		return "argon2(unknown)"
	}
}

// Version selects the pre-hash layout and the G overwrite/accumulate rule.
type Version uint32

const (
	VersionLegacy  Version = Version(engine.Version10) // 0x10
	VersionCurrent Version = Version(engine.Version13) // 0x13
)

// Flags controls side behaviors around a hash call, mirroring the
// reference implementation's clear_password/clear_secret/clear_memory/
// print_internals bits.
type Flags uint32

const (
	// ClearPassword zeroes ctx.Password after Run returns, success or not.
	ClearPassword Flags = 1 << iota
	// ClearSecret zeroes ctx.Secret after Run returns, success or not.
	ClearSecret
	// ClearMemory zeroes the working memory array before it is released.
	ClearMemory
	// PrintInternals invokes ctx.Observer after every block write.
	PrintInternals
)

// Position locates one written block within the (pass, lane, slice, index)
// space; it is only ever populated for PrintInternals observers.
type Position struct {
	Pass  uint32
	Lane  uint32
	Slice uint32
	Index uint32
}

// Observer is invoked after every block write when PrintInternals is set.
// block is a defensive copy; mutating it has no effect on the hash.
type Observer func(pos Position, block []byte)

const (
	minLanes = 1
	maxLanes = 1<<24 - 1

	minThreads = 1
	maxThreads = 1<<24 - 1

	minTime = 1

	// minMemory is the absolute floor on m (in KiB-equivalent blocks)
	// before the 8p/4p rounding rule even applies: two blocks per sync
	// point, matching the reference implementation's ARGON2_MIN_MEMORY.
	minMemory = 2 * 4

	minTagLength = 4

	minSaltLength = 8
)

// Context carries every input to one hash call: the password and
// optional secret/associated data, the cost parameters, the output
// length, the variant and version, and the side-behavior flags. A
// Context is consumed by a single Run/Hash call; it is not safe to
// reuse concurrently.
type Context struct {
	Password []byte
	Salt     []byte
	Secret   []byte
	AD       []byte

	Time   uint32 // t: number of passes
	Memory uint32 // m: memory cost in 1 KiB blocks
	Lanes  uint32 // p: degree of parallelism baked into the addressing

	// Threads is the number of goroutines dispatching segments; it may
	// be lower than Lanes (segments are then processed in waves) but
	// never changes the resulting tag. Zero means "one per lane".
	Threads uint32

	TagLength uint32

	Variant Variant
	Version Version
	Flags   Flags

	// Allocator supplies the working memory buffer. Nil selects the
	// package default (a size-bucketed sync.Pool).
	Allocator Allocator

	// Observer receives a callback per written block when Flags has
	// PrintInternals set.
	Observer Observer
}

// Validate checks ctx against the Argon2 input constraints, returning an
// *Error identifying the first violation found. Hash and Run call this
// before any allocation.
//
// The reference implementation's PwdPtrMismatch/SaltPtrMismatch/
// SecretPtrMismatch/AdPtrMismatch codes guard against a null C pointer
// paired with a nonzero length; a Go nil slice always reports len 0, so
// that condition cannot occur here. The codes are kept in the ErrorCode
// enum for parity with the reference error set but Validate never
// returns them.
func (ctx *Context) Validate() error {
	if uint64(len(ctx.Password)) >= 1<<32 {
		return newErr(ErrPwdTooLong)
	}

	if len(ctx.Salt) < minSaltLength {
		return newErr(ErrSaltTooShort)
	}
	if uint64(len(ctx.Salt)) >= 1<<32 {
		return newErr(ErrSaltTooLong)
	}

	if uint64(len(ctx.Secret)) >= 1<<32 {
		return newErr(ErrSecretTooLong)
	}

	if uint64(len(ctx.AD)) >= 1<<32 {
		return newErr(ErrAdTooLong)
	}

	if ctx.Lanes < minLanes {
		return newErr(ErrLanesTooFew)
	}
	if ctx.Lanes > maxLanes {
		return newErr(ErrLanesTooMany)
	}

	if ctx.Threads != 0 {
		if ctx.Threads < minThreads {
			return newErr(ErrThreadsTooFew)
		}
		if ctx.Threads > maxThreads {
			return newErr(ErrThreadsTooMany)
		}
	}

	if ctx.Time < minTime {
		return newErr(ErrTimeTooSmall)
	}

	if ctx.Memory < minMemory {
		return newErr(ErrMemoryTooLittle)
	}
	if uint64(ctx.Memory) > uint64(^uint32(0)) {
		return newErr(ErrMemoryTooMuch)
	}

	if ctx.TagLength < minTagLength {
		return newErr(ErrOutputTooShort)
	}

	switch ctx.Variant {
	case VariantArgon2d, VariantArgon2i, VariantArgon2id, VariantArgon2ds:
	default:
		return newErr(ErrIncorrectType)
	}

	return nil
}

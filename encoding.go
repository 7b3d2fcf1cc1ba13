package argon2

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// b64 is the raw, unpadded base64 alphabet the PHC string format uses for
// its salt and tag fields, matching r2unit-openpasswd's use of
// base64.StdEncoding for its own encoded blobs, adjusted to the
// padding-free variant the PHC spec and encoding.c both require.
var b64 = base64.RawStdEncoding

func variantID(v Variant) (string, bool) {
	switch v {
	case VariantArgon2d:
		return "argon2d", true
	case VariantArgon2i:
		return "argon2i", true
	case VariantArgon2id:
		return "argon2id", true
	case VariantArgon2ds:
		return "argon2ds", true
	default:
		return "", false
	}
}

func variantFromID(id string) (Variant, bool) {
	switch id {
	case "argon2d":
		return VariantArgon2d, true
	case "argon2i":
		return VariantArgon2i, true
	case "argon2id":
		return VariantArgon2id, true
	case "argon2ds":
		return VariantArgon2ds, true
	default:
		return 0, false
	}
}

// Encode renders ctx and the tag it produced as a PHC string:
// $<variant>$v=<version>$m=<memory>,t=<time>,p=<lanes>$<salt>$<tag>
//
// Field order and the raw-base64, no-padding salt/tag encoding follow
// original_source/src/encoding.c's encode_string.
func Encode(ctx *Context, tag []byte) (string, error) {
	id, ok := variantID(ctx.Variant)
	if !ok {
		return "", wrapErr(ErrEncodingFailure, fmt.Errorf("unknown variant %d", ctx.Variant))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		id, uint32(ctx.Version), ctx.Memory, ctx.Time, ctx.Lanes,
		b64.EncodeToString(ctx.Salt), b64.EncodeToString(tag))
	return b.String(), nil
}

// decoded holds the fields recovered from a PHC string by Decode.
type decoded struct {
	Variant Variant
	Version Version
	Memory  uint32
	Time    uint32
	Lanes   uint32
	Salt    []byte
	Tag     []byte
}

// Decode parses a PHC-format Argon2 hash string, per
// original_source/src/encoding.c's decode_string: reject anything that
// does not resolve to a known variant, a version field, a complete
// m/t/p parameter triple, and both base64 fields.
func Decode(encoded string) (*decoded, error) {
	fields := strings.Split(encoded, "$")
	// Split on a leading '$' yields an empty first field: "", id, v=.., m=..,
	// salt, tag.
	if len(fields) != 6 || fields[0] != "" {
		return nil, wrapErr(ErrDecodingFailure, fmt.Errorf("malformed hash string"))
	}

	variant, ok := variantFromID(fields[1])
	if !ok {
		return nil, wrapErr(ErrDecodingFailure, fmt.Errorf("unknown variant identifier %q", fields[1]))
	}

	version, err := parseVersionField(fields[2])
	if err != nil {
		return nil, wrapErr(ErrDecodingFailure, err)
	}

	memory, timeCost, lanes, err := parseParamsField(fields[3])
	if err != nil {
		return nil, wrapErr(ErrDecodingFailure, err)
	}

	salt, err := b64.DecodeString(fields[4])
	if err != nil {
		return nil, wrapErr(ErrDecodingFailure, fmt.Errorf("salt: %w", err))
	}
	if len(salt) < minSaltLength {
		return nil, newErr(ErrSaltTooShort)
	}

	tag, err := b64.DecodeString(fields[5])
	if err != nil {
		return nil, wrapErr(ErrDecodingFailure, fmt.Errorf("tag: %w", err))
	}
	if len(tag) < minTagLength {
		return nil, newErr(ErrOutputTooShort)
	}

	return &decoded{
		Variant: variant,
		Version: version,
		Memory:  memory,
		Time:    timeCost,
		Lanes:   lanes,
		Salt:    salt,
		Tag:     tag,
	}, nil
}

func parseVersionField(field string) (Version, error) {
	v, ok := strings.CutPrefix(field, "v=")
	if !ok {
		return 0, fmt.Errorf("expected version field, got %q", field)
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("version: %w", err)
	}
	return Version(n), nil
}

func parseParamsField(field string) (memory, time, lanes uint32, err error) {
	parts := strings.Split(field, ",")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("expected m=,t=,p= triple, got %q", field)
	}

	get := func(part, prefix string) (uint32, error) {
		v, ok := strings.CutPrefix(part, prefix)
		if !ok {
			return 0, fmt.Errorf("expected %q prefix, got %q", prefix, part)
		}
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return 0, err
		}
		return uint32(n), nil
	}

	if memory, err = get(parts[0], "m="); err != nil {
		return 0, 0, 0, err
	}
	if time, err = get(parts[1], "t="); err != nil {
		return 0, 0, 0, err
	}
	if lanes, err = get(parts[2], "p="); err != nil {
		return 0, 0, 0, err
	}
	return memory, time, lanes, nil
}

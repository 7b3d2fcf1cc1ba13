package argon2

import (
	"bytes"
	"encoding/hex"
	"testing"
)

// Vectors below are the six end-to-end rows from the module's
// specification: version 0x13, Argon2i, salt "somesalt", password
// "password", tag length 32.
func TestHashVectors(t *testing.T) {
	tests := []struct {
		name    string
		time    uint32
		log2Mem uint32
		lanes   uint32
		wantHex string
	}{
		{"t2_m16_p1", 2, 16, 1, "c1628832147d9720c5bd1cfd61367078729f6dfb6f8fea9ff98158e0d7816ed0"},
		{"t2_m18_p1", 2, 18, 1, "296dbae80b807cdceaad44ae741b506f14db0959267b183b118f9b24229bc7cb"},
		{"t2_m8_p1", 2, 8, 1, "89e9029f4637b295beb027056a7336c414fadd43f6b208645281cb214a56452f"},
		{"t2_m8_p2", 2, 8, 2, "4ff5ce2769a1d7f4c8a491df09d41a9fbe90e5eb02155a13e4c01e20cd4eab61"},
		{"t1_m16_p1", 1, 16, 1, "d168075c4d985e13ebeae560cf8b94c3b5d8a16c51916b6f4ac2da3ac11bbecf"},
		{"t4_m16_p1", 4, 16, 1, "aaa953d58af3706ce3df1aefd4a64a84e31d7f54175231f1285259f88174ce5b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := &Context{
				Password:  []byte("password"),
				Salt:      []byte("somesalt"),
				Time:      tt.time,
				Memory:    1 << tt.log2Mem,
				Lanes:     tt.lanes,
				TagLength: 32,
				Variant:   VariantArgon2i,
				Version:   VersionCurrent,
			}

			tag, err := ctx.Run()
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}

			want, err := hex.DecodeString(tt.wantHex)
			if err != nil {
				t.Fatalf("bad test vector: %v", err)
			}
			if !bytes.Equal(tag, want) {
				t.Errorf("tag = %x, want %x", tag, want)
			}
		})
	}
}

func TestHashErrorPaths(t *testing.T) {
	tests := []struct {
		name    string
		ctx     Context
		wantErr ErrorCode
	}{
		{
			name: "memory too little",
			ctx: Context{
				Password: []byte("password"), Salt: []byte("somesalt"),
				Time: 2, Memory: 1, Lanes: 1, TagLength: 32, Variant: VariantArgon2i,
			},
			wantErr: ErrMemoryTooLittle,
		},
		{
			name: "salt too short",
			ctx: Context{
				Password: []byte("password"), Salt: []byte("s"),
				Time: 2, Memory: 1 << 16, Lanes: 1, TagLength: 32, Variant: VariantArgon2i,
			},
			wantErr: ErrSaltTooShort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.ctx.Run()
			var aerr *Error
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errorsAs(err, &aerr) {
				t.Fatalf("error %v is not *Error", err)
			}
			if aerr.Code != tt.wantErr {
				t.Errorf("code = %v, want %v", aerr.Code, tt.wantErr)
			}
		})
	}
}

// errorsAs is a tiny local stand-in for errors.As so this file needs only
// one stdlib import for the comparison; *Error never wraps another *Error
// so a direct type assertion suffices here.
func errorsAs(err error, target **Error) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}
	*target = e
	return true
}

func TestVerifyRoundTrip(t *testing.T) {
	ctx := &Context{
		Password:  []byte("correct horse battery staple"),
		Salt:      []byte("saltsaltsalt"),
		Time:      2,
		Memory:    1 << 12,
		Lanes:     2,
		TagLength: 32,
		Variant:   VariantArgon2id,
		Version:   VersionCurrent,
	}

	tag, err := ctx.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	encoded, err := Encode(ctx, tag)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	if err := Verify(encoded, ctx.Password, VariantArgon2id); err != nil {
		t.Errorf("Verify() with correct password = %v, want nil", err)
	}

	wrong := append([]byte(nil), ctx.Password...)
	wrong[0] ^= 0xFF
	err = Verify(encoded, wrong, VariantArgon2id)
	var aerr *Error
	if !errorsAs(err, &aerr) || aerr.Code != ErrVerifyMismatch {
		t.Errorf("Verify() with wrong password = %v, want ErrVerifyMismatch", err)
	}

	if err := Verify(encoded, ctx.Password, VariantArgon2i); !errorsAs(err, &aerr) || aerr.Code != ErrIncorrectType {
		t.Errorf("Verify() with wrong variant = %v, want ErrIncorrectType", err)
	}
}

func TestEncodeDecodeFields(t *testing.T) {
	ctx := &Context{
		Salt:    []byte("somesaltsomesalt"),
		Time:    3,
		Memory:  65536,
		Lanes:   4,
		Variant: VariantArgon2id,
		Version: VersionCurrent,
	}
	tag := bytes.Repeat([]byte{0xAB}, 32)

	encoded, err := Encode(ctx, tag)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	d, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if d.Variant != ctx.Variant || d.Version != ctx.Version || d.Memory != ctx.Memory ||
		d.Time != ctx.Time || d.Lanes != ctx.Lanes {
		t.Errorf("decoded params = %+v, want to match ctx %+v", d, ctx)
	}
	if !bytes.Equal(d.Salt, ctx.Salt) {
		t.Errorf("decoded salt = %x, want %x", d.Salt, ctx.Salt)
	}
	if !bytes.Equal(d.Tag, tag) {
		t.Errorf("decoded tag = %x, want %x", d.Tag, tag)
	}
}

func TestDecodeRejectsMalformed(t *testing.T) {
	cases := []string{
		"",
		"not-a-hash-string",
		"$argon2id$v=19$m=65536,t=3,p=4$c29tZXNhbHQ", // missing tag field
		"$argon2zz$v=19$m=65536,t=3,p=4$c29tZXNhbHQ$dGFn",
	}
	for _, c := range cases {
		if _, err := Decode(c); err == nil {
			t.Errorf("Decode(%q) = nil error, want error", c)
		}
	}
}

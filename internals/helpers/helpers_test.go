package helper

import (
	"encoding/base64"
	"regexp"
	"testing"
)

func TestGenerateCodeShape(t *testing.T) {
	code := GenerateCode("ORD")
	if !regexp.MustCompile(`^ORD\d+[A-Z0-9]{5}$`).MatchString(code) {
		t.Errorf("code %q does not match expected shape", code)
	}
}

func TestGenerateCodeDistinctInSameMillisecond(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code := GenerateCode("PAY")
		if seen[code] {
			t.Fatalf("duplicate code %q", code)
		}
		seen[code] = true
	}
}

func TestDecodeBase64Payload(t *testing.T) {
	payload := []byte("hello image")
	encoded := base64.StdEncoding.EncodeToString(payload)

	// dengan prefix data-URI
	got, err := DecodeBase64Payload("data:image/jpeg;base64," + encoded)
	if err != nil {
		t.Fatalf("decode with prefix: %v", err)
	}
	if string(got) != "hello image" {
		t.Errorf("got %q", got)
	}

	// raw base64 tanpa prefix
	got, err = DecodeBase64Payload(encoded)
	if err != nil {
		t.Fatalf("decode raw: %v", err)
	}
	if string(got) != "hello image" {
		t.Errorf("got %q", got)
	}

	// tanpa padding
	if _, err := DecodeBase64Payload(base64.RawStdEncoding.EncodeToString(payload)); err != nil {
		t.Errorf("decode unpadded: %v", err)
	}
}

func TestDecodeBase64PayloadEmpty(t *testing.T) {
	for _, in := range []string{"", "data:image/png;base64,"} {
		_, err := DecodeBase64Payload(in)
		if _, ok := err.(*DecodeError); !ok {
			t.Errorf("DecodeBase64Payload(%q) err = %v, want DecodeError", in, err)
		}
	}
}

func TestFileExtension(t *testing.T) {
	cases := map[string]string{
		"bukti.png":        "png",
		"foto.profil.JPEG": "JPEG",
		"tanpa-ekstensi":   "jpg",
		"berakhir.titik.":  "jpg",
	}
	for in, want := range cases {
		if got := FileExtension(in); got != want {
			t.Errorf("FileExtension(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestToInt(t *testing.T) {
	if v, ok := ToInt(float64(7)); !ok || v != 7 {
		t.Errorf("ToInt(float64) = %d, %v", v, ok)
	}
	if v, ok := ToInt("42"); !ok || v != 42 {
		t.Errorf("ToInt(string) = %d, %v", v, ok)
	}
	if v, ok := ToInt(int64(3)); !ok || v != 3 {
		t.Errorf("ToInt(int64) = %d, %v", v, ok)
	}
	if _, ok := ToInt("abc"); ok {
		t.Error("ToInt(\"abc\") should fail")
	}
	if _, ok := ToInt(nil); ok {
		t.Error("ToInt(nil) should fail")
	}
}

func TestIsValidNIK(t *testing.T) {
	if !IsValidNIK("3201234567890001") {
		t.Error("16 digit NIK should be valid")
	}
	for _, nik := range []string{"", "123", "32012345678900011", "32012345678900ab"} {
		if IsValidNIK(nik) {
			t.Errorf("IsValidNIK(%q) should be false", nik)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	if !IsValidEmail("budi@dayamotor.com") {
		t.Error("valid email rejected")
	}
	for _, email := range []string{"", "budi", "budi@", "@dayamotor.com", "a b@c.d"} {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) should be false", email)
		}
	}
}

func TestValidationErrorMessageJoinsFields(t *testing.T) {
	err := MissingFieldsError([]string{"customer_name", "nik_ktp"})
	want := "customer_name is required, nik_ktp is required"
	if err.Error() != want {
		t.Errorf("message = %q, want %q", err.Error(), want)
	}
}

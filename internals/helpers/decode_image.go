package helper

import (
	"encoding/base64"
	"regexp"
	"strings"
)

var dataURIPrefix = regexp.MustCompile(`^data:image/\w+;base64,`)

// DecodeBase64Payload men-decode payload gambar base64, membuang prefix
// data-URI kalau ada. Hasil kosong dianggap payload rusak.
func DecodeBase64Payload(encoded string) ([]byte, error) {
	raw := dataURIPrefix.ReplaceAllString(strings.TrimSpace(encoded), "")
	buf, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		// frontend kadang mengirim tanpa padding
		buf, err = base64.RawStdEncoding.DecodeString(raw)
	}
	if err != nil {
		return nil, &DecodeError{Msg: "Failed to decode base64 file data"}
	}
	if len(buf) == 0 {
		return nil, &DecodeError{Msg: "Failed to decode base64 file data"}
	}
	return buf, nil
}

// FileExtension mengambil ekstensi dari nama file, default jpg.
func FileExtension(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 || idx == len(filename)-1 {
		return "jpg"
	}
	return filename[idx+1:]
}

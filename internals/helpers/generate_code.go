package helper

import (
	"crypto/rand"
	"fmt"
	"time"
)

const codeCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateCode membuat kode unik bergaya ORD<millis><5 char acak>.
// Suffix acak menjamin dua kode pada milidetik yang sama tetap berbeda
// (unik dengan probabilitas sangat tinggi, bukan dijamin oleh constraint).
func GenerateCode(prefix string) string {
	return fmt.Sprintf("%s%d%s", prefix, time.Now().UnixMilli(), randSuffix(5))
}

func randSuffix(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		// fallback deterministik dari clock, tetap dalam charset
		for i := range b {
			b[i] = codeCharset[int(time.Now().UnixNano()>>uint(i*8))%len(codeCharset)]
		}
		return string(b)
	}
	for i := range b {
		b[i] = codeCharset[int(b[i])%len(codeCharset)]
	}
	return string(b)
}

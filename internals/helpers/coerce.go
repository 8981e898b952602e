package helper

import "strconv"

// ToInt menormalkan id dari body JSON: klien lama kadang mengirim angka,
// kadang string.
func ToInt(v any) (int, bool) {
	switch t := v.(type) {
	case float64:
		return int(t), true
	case int:
		return t, true
	case int64:
		return int(t), true
	case string:
		n, err := strconv.Atoi(t)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

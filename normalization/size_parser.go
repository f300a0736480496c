package normalization

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// sizeTokenPattern находит токен "size" с последующим целым или десятичным числом.
// Примеры: "Size 4, Medium adult, 50-90 kg", "size:2.5"
var sizeTokenPattern = regexp.MustCompile(`(?i)size\s*:?\s*(\d+(?:\.\d+)?)`)

// ParseNominalSize извлекает номинальный размер из текстового дескриптора.
// Если вся строка является числом, оно возвращается напрямую; иначе ищется
// токен "size" с числом. Возвращает (0, false) для нераспознаваемого входа.
// Никогда не паникует; нераспознанный размер исключает запись только из
// перечисления размеров, но не из каталога.
func ParseNominalSize(raw string) (float64, bool) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return 0, false
	}

	if value, err := strconv.ParseFloat(text, 64); err == nil {
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return 0, false
		}
		return value, true
	}

	match := sizeTokenPattern.FindStringSubmatch(text)
	if match == nil {
		return 0, false
	}

	value, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

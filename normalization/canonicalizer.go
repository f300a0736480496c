package normalization

import (
	"strings"
)

// PlaceholderName подставляется вместо пустого отображаемого имени устройства
const PlaceholderName = "Unknown"

// Canonicalizer приводит свободный текст названий устройств и производителей
// к каноническим ключам для группировки и к отображаемым строкам.
// Все методы чистые и тотальные: пустой или мусорный вход дает пустую строку,
// ошибок не возникает.
type Canonicalizer struct {
	descriptorPhrases   []string
	manufacturerAliases map[string]string
}

// CanonicalizerConfig данные для настройки канонизатора.
// Таблица опечаток производителей и список хвостовых описательных фраз
// загружаются как данные, а не зашиваются в код.
type CanonicalizerConfig struct {
	// DescriptorPhrases хвостовые описательные фразы, отбрасываемые из
	// канонического ключа названия ("Supraglottic Airway Device" и т.п.).
	// Сравнение регистронезависимое.
	DescriptorPhrases []string `json:"descriptor_phrases"`
	// ManufacturerAliases таблица исправления известных опечаток:
	// канонизированное написание с опечаткой -> правильная форма производителя
	ManufacturerAliases map[string]string `json:"manufacturer_aliases"`
}

// DefaultCanonicalizerConfig возвращает встроенную конфигурацию канонизатора
func DefaultCanonicalizerConfig() CanonicalizerConfig {
	return CanonicalizerConfig{
		DescriptorPhrases: []string{
			"supraglottic airway device",
			"supraglottic airway",
			"intubating laryngeal airway",
			"intubating laryngeal mask airway",
			"laryngeal mask airway",
			"laryngeal mask",
			"airway device",
			"device",
		},
		ManufacturerAliases: map[string]string{
			"intersurgcial":   "Intersurgical",
			"intresurgical":   "Intersurgical",
			"ambu as":         "Ambu",
			"teleflex medical": "Teleflex",
		},
	}
}

// NewCanonicalizer создает канонизатор с переданной конфигурацией.
// Пустые поля конфигурации дополняются встроенными значениями.
func NewCanonicalizer(config CanonicalizerConfig) *Canonicalizer {
	defaults := DefaultCanonicalizerConfig()

	phrases := config.DescriptorPhrases
	if len(phrases) == 0 {
		phrases = defaults.DescriptorPhrases
	}

	aliases := make(map[string]string, len(defaults.ManufacturerAliases)+len(config.ManufacturerAliases))
	for key, value := range defaults.ManufacturerAliases {
		aliases[collapseLower(key)] = value
	}
	for key, value := range config.ManufacturerAliases {
		aliases[collapseLower(key)] = value
	}

	normalized := make([]string, 0, len(phrases))
	for _, phrase := range phrases {
		phrase = collapseLower(phrase)
		if phrase != "" {
			normalized = append(normalized, phrase)
		}
	}

	return &Canonicalizer{
		descriptorPhrases:   normalized,
		manufacturerAliases: aliases,
	}
}

// NewDefaultCanonicalizer создает канонизатор со встроенной конфигурацией
func NewDefaultCanonicalizer() *Canonicalizer {
	return NewCanonicalizer(DefaultCanonicalizerConfig())
}

// CanonicalName строит канонический ключ названия устройства.
// Шаги: удаление товарных знаков, обрезка по первой запятой, схлопывание
// пробелов, нижний регистр, отбрасывание хвостовых описательных фраз.
// Пустой результат означает исключение записи из группировки по брендам.
func (c *Canonicalizer) CanonicalName(raw string) string {
	text := stripTrademarkMarks(raw)
	text = beforeFirstComma(text)
	text = collapseLower(text)

	// Хвостовые фразы отбрасываем до стабилизации: после удаления одной
	// фразы хвостом может оказаться следующая
	for {
		trimmed := c.stripTrailingDescriptor(text)
		if trimmed == text {
			break
		}
		text = trimmed
	}

	return strings.TrimSpace(text)
}

// DisplayName строит отображаемое название устройства.
// Товарные знаки удаляются, текст берется до первой запятой; пустой
// результат заменяется заглушкой PlaceholderName.
func (c *Canonicalizer) DisplayName(raw string) string {
	text := stripTrademarkMarks(raw)
	text = beforeFirstComma(text)
	text = collapseSpaces(text)
	if text == "" {
		return PlaceholderName
	}
	return text
}

// CanonicalManufacturer строит канонический ключ производителя:
// схлопнутые пробелы, нижний регистр, исправление известных опечаток
func (c *Canonicalizer) CanonicalManufacturer(raw string) string {
	key := collapseLower(stripTrademarkMarks(raw))
	if key == "" {
		return ""
	}
	if corrected, ok := c.manufacturerAliases[key]; ok {
		return strings.ToLower(corrected)
	}
	return key
}

// DisplayManufacturer строит отображаемую форму производителя
// с исправлением известных опечаток
func (c *Canonicalizer) DisplayManufacturer(raw string) string {
	text := collapseSpaces(stripTrademarkMarks(raw))
	if text == "" {
		return ""
	}
	if corrected, ok := c.manufacturerAliases[strings.ToLower(text)]; ok {
		return corrected
	}
	return text
}

// stripTrailingDescriptor отбрасывает одну хвостовую описательную фразу
func (c *Canonicalizer) stripTrailingDescriptor(text string) string {
	for _, phrase := range c.descriptorPhrases {
		if text == phrase {
			return ""
		}
		if strings.HasSuffix(text, " "+phrase) {
			return strings.TrimSpace(strings.TrimSuffix(text, phrase))
		}
	}
	return text
}

// stripTrademarkMarks удаляет символы товарных знаков
func stripTrademarkMarks(text string) string {
	var builder strings.Builder
	builder.Grow(len(text))
	for _, r := range text {
		switch r {
		case '®', '™', '©', '℠':
			continue
		default:
			builder.WriteRune(r)
		}
	}
	return builder.String()
}

// beforeFirstComma возвращает текст до первой запятой
func beforeFirstComma(text string) string {
	if idx := strings.IndexRune(text, ','); idx >= 0 {
		return text[:idx]
	}
	return text
}

// collapseSpaces схлопывает пробельные последовательности и обрезает края
func collapseSpaces(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// collapseLower схлопывает пробелы и приводит к нижнему регистру
func collapseLower(text string) string {
	return strings.ToLower(collapseSpaces(text))
}

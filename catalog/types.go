package catalog

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// DefaultTubeType тип трубки по умолчанию, когда поле type отсутствует
const DefaultTubeType = "Standard"

// FlexFloat числовое поле каталога, которое в исходных данных может быть
// записано числом или числоподобным текстом ("10", "10.0 mm", "n/a").
// Нераспознанное значение не считается ошибкой: запись просто исключается
// из сопоставления, но остается в каталоге.
type FlexFloat struct {
	value float64
	valid bool
}

// NewFlexFloat создает валидное числовое значение
func NewFlexFloat(value float64) FlexFloat {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return FlexFloat{}
	}
	return FlexFloat{value: value, valid: true}
}

// Value возвращает число и признак того, что значение распознано и конечно
func (f FlexFloat) Value() (float64, bool) {
	return f.value, f.valid
}

// UnmarshalJSON принимает число, строку с числом или null
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	*f = FlexFloat{}

	// json.Unmarshal на null не трогает число и не возвращает ошибку,
	// поэтому null отсекается до числовой ветки: поле остается нераспознанным
	if string(data) == "null" {
		return nil
	}

	var number float64
	if err := json.Unmarshal(data, &number); err == nil {
		*f = NewFlexFloat(number)
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*f = parseFlexFloat(text)
		return nil
	}

	// Нечисловое значение (null, объект) - запись остается в каталоге
	// с нераспознанным полем
	return nil
}

// MarshalJSON сериализует распознанное число, иначе null
func (f FlexFloat) MarshalJSON() ([]byte, error) {
	if !f.valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}

// parseFlexFloat распознает числоподобный текст.
// Десятичная запятая приводится к точке, единица измерения "mm" отбрасывается.
func parseFlexFloat(text string) FlexFloat {
	text = strings.TrimSpace(strings.ToLower(text))
	text = strings.TrimSuffix(text, "mm")
	text = strings.ReplaceAll(text, ",", ".")
	text = strings.TrimSpace(text)
	if text == "" {
		return FlexFloat{}
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return FlexFloat{}
	}
	return NewFlexFloat(value)
}

// FlexString текстовое поле, которое в исходных данных может быть записано
// строкой или числом (поле size у воздуховодов)
type FlexString struct {
	Raw string
}

// UnmarshalJSON принимает строку, число или null
func (s *FlexString) UnmarshalJSON(data []byte) error {
	s.Raw = ""

	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		s.Raw = text
		return nil
	}

	var number json.Number
	if err := json.Unmarshal(data, &number); err == nil {
		s.Raw = number.String()
		return nil
	}

	return nil
}

// MarshalJSON сериализует исходный текст
func (s FlexString) MarshalJSON() ([]byte, error) {
	if s.Raw == "" {
		return []byte("null"), nil
	}
	return json.Marshal(s.Raw)
}

// DeviceRecord сырая запись каталога устройства.
// После загрузки записи неизменяемы; все производные структуры (ключи,
// группы, результаты) пересчитываются заново от текущего набора записей.
type DeviceRecord struct {
	// Name свободный текст: может содержать товарные знаки, описательные
	// фразы через запятую и встроенные токены размера
	Name string `json:"name"`
	// Manufacturer свободный текст, встречаются опечатки
	Manufacturer string `json:"manufacturer,omitempty"`
	// InternalMM внутренний диаметр, мм
	InternalMM FlexFloat `json:"internal_mm"`
	// ExternalMM наружный диаметр, мм (заполняется для ЭТТ)
	ExternalMM FlexFloat `json:"external_mm,omitempty"`
	// Size дескриптор размера воздуховода ("Size 4, Medium adult, 50-90 kg")
	Size FlexString `json:"size,omitempty"`
	// Type тип трубки (для ЭТТ); пустое значение означает DefaultTubeType
	Type string `json:"type,omitempty"`
	// Notes произвольные примечания
	Notes string `json:"notes,omitempty"`
}

// TubeType возвращает тип трубки с подстановкой значения по умолчанию
func (r DeviceRecord) TubeType() string {
	tubeType := strings.TrimSpace(r.Type)
	if tubeType == "" {
		return DefaultTubeType
	}
	return tubeType
}

// Catalogs два плоских набора записей: воздуховоды (SAD) и трубки (ЭТТ)
type Catalogs struct {
	SADs []DeviceRecord `json:"sads"`
	ETTs []DeviceRecord `json:"etts"`
}

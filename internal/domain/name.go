package domain

import (
	"slices"
	"strings"
)

// NameSeparator разделяет слова имени в исходном тексте шаблона.
const NameSeparator = "."

// Name - путь имени сущности, например ["rusty", "metal", "door"].
// В шаблонах записывается через точку: rusty.metal.door
type Name []string

// ParseName разбивает запись через точку на слова.
// Пустые слова не отбрасываются: "a..b" дает ["a", "", "b"] и ни с чем не совпадет.
func ParseName(s string) Name {
	return Name(strings.Split(s, NameSeparator))
}

// String возвращает запись через точку
func (n Name) String() string {
	return strings.Join(n, NameSeparator)
}

// Equal сравнивает пути пословно.
func (n Name) Equal(other Name) bool {
	return slices.Equal(n, other)
}

// Valid проверяет, что имя непустое, а каждое слово непустое и без точек.
func (n Name) Valid() bool {
	if len(n) == 0 {
		return false
	}
	for _, w := range n {
		if w == "" || strings.Contains(w, NameSeparator) {
			return false
		}
	}
	return true
}

package fuzzymatch

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Extractor извлекает из элемента строку для сопоставления
type Extractor[T any] func(T) string

// Filter возвращает элементы, у которых хотя бы одно извлеченное поле
// похоже на query не меньше, чем на threshold (диапазон [0, 1], ниже - мягче).
// Результат отсортирован по убыванию лучшего совпадения,
// относительный порядок элементов с равной оценкой сохраняется.
// Пустой (после trim) query возвращает исходный срез без изменений.
func Filter[T any](items []T, query string, extractors []Extractor[T], threshold float64) []T {
	query = strings.TrimSpace(query)
	if query == "" {
		return items
	}

	type scored struct {
		item  T
		score float64
	}

	matched := make([]scored, 0, len(items))
	for _, item := range items {
		best := 0.0
		for _, extract := range extractors {
			if s := Similarity(query, extract(item)); s > best {
				best = s
			}
		}
		if best >= threshold {
			matched = append(matched, scored{item: item, score: best})
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].score > matched[j].score
	})

	result := make([]T, len(matched))
	for i, m := range matched {
		result[i] = m.item
	}
	return result
}

// Similarity возвращает степень похожести строк в диапазоне [0, 1]
// Сравнение регистронезависимое. Учитываются два сигнала:
// нормализованное редакционное расстояние и подстрочное вхождение запроса,
// берется максимум из двух оценок.
func Similarity(query, s string) float64 {
	q := strings.ToLower(strings.TrimSpace(query))
	t := strings.ToLower(strings.TrimSpace(s))

	if q == "" {
		return 1
	}
	if t == "" {
		return 0
	}
	if q == t {
		return 1
	}

	qLen := utf8.RuneCountInString(q)
	tLen := utf8.RuneCountInString(t)
	maxLen := qLen
	if tLen > maxLen {
		maxLen = tLen
	}

	distance := levenshtein.ComputeDistance(q, t)
	score := 1 - float64(distance)/float64(maxLen)

	// Короткий запрос внутри длинной строки дает большое редакционное
	// расстояние, но для поиска это хорошее совпадение
	if strings.Contains(t, q) {
		containsScore := 0.6 + 0.4*float64(qLen)/float64(tLen)
		if containsScore > score {
			score = containsScore
		}
	}

	if score < 0 {
		return 0
	}
	return score
}

// Package i18n holds the console message catalog.
//
// Every user-visible sentence is a key in this package. Keys are the English
// text; Russian translations are registered alongside. Numbers are passed to
// the printer as pre-formatted strings so no locale digit grouping is
// applied to array values.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys.
const (
	PromptSize      = "Enter the array size: "
	PromptDivisor   = "Enter the number k: "
	PromptFillMode  = "Fill the array with random numbers? (1 - yes, 0 - no): "
	PromptMin       = "Enter the minimum random value: "
	PromptMax       = "Enter the maximum random value: "
	PromptElement   = "Enter element %s: "
	ErrInput        = "Input error. Please try again."
	ErrRange        = "Error: the minimum must not exceed the maximum. Please try again."
	ErrAllocation   = "Memory allocation error"
	HeaderArray     = "Array:"
	HeaderProcessed = "Array after processing:"
	EvenProduct     = "Product of even elements: %s"
	NoEvenElements  = "There are no even elements."
	HasRemainder    = "There are positive numbers with remainder 2."
	NoRemainder     = "There are no positive numbers with remainder 2."
	ZeroDivisor     = "The number k is zero; the remainder check was skipped."
)

var russian = map[string]string{
	PromptSize:      "Введите размер массива: ",
	PromptDivisor:   "Введите число k: ",
	PromptFillMode:  "Заполнить массив случайными числами? (1 - да, 0 - нет): ",
	PromptMin:       "Введите минимальное значение для случайных чисел: ",
	PromptMax:       "Введите максимальное значение для случайных чисел: ",
	PromptElement:   "Введите элемент %s: ",
	ErrInput:        "Ошибка ввода. Повторите попытку.",
	ErrRange:        "Ошибка: минимальное значение не должно превышать максимальное. Попробуйте снова.",
	ErrAllocation:   "Ошибка выделения памяти",
	HeaderArray:     "Массив:",
	HeaderProcessed: "Массив после процесса:",
	EvenProduct:     "Произведение четных элементов: %s",
	NoEvenElements:  "Четных элементов нет.",
	HasRemainder:    "Есть положительные числа с остатком 2.",
	NoRemainder:     "Положительных чисел с остатком 2 нет.",
	ZeroDivisor:     "Число k равно нулю, проверка остатка пропущена.",
}

// SupportedLanguages lists the language codes accepted by NewPrinter.
var SupportedLanguages = []string{"en", "ru"}

var builtin = mustBuild()

func mustBuild() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, ru := range russian {
		if err := b.SetString(language.English, key, key); err != nil {
			panic(fmt.Sprintf("i18n: register %q: %v", key, err))
		}
		if err := b.SetString(language.Russian, key, ru); err != nil {
			panic(fmt.Sprintf("i18n: register %q: %v", key, err))
		}
	}
	return b
}

// Match returns the catalog language closest to lang.
// Unknown or malformed codes fall back to English.
func Match(lang string) language.Tag {
	tag, err := language.Parse(lang)
	if err != nil {
		return language.English
	}
	supported := builtin.Languages()
	_, idx, conf := language.NewMatcher(supported).Match(tag)
	if conf == language.No {
		return language.English
	}
	return supported[idx]
}

// NewPrinter returns a printer for the catalog language closest to lang.
func NewPrinter(lang string) *message.Printer {
	return message.NewPrinter(Match(lang), message.Catalog(builtin))
}

package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WrapText 将文本按指定宽度自动换行
// 参数:
//   - textStr: 要换行的文本
//   - font: 字体
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行）
//
// 换行规则:
//   - 保留文本中的显式换行
//   - 英文按单词断行，单词本身超宽时按字符强制断行
//   - 中文等无空格文本按字符断行
func WrapText(textStr string, font *text.GoTextFace, maxWidth float64) []string {
	if textStr == "" || font == nil || maxWidth <= 0 {
		return []string{textStr}
	}
	return wrapLines(textStr, maxWidth, func(s string) float64 {
		return measureTextWidth(s, font)
	})
}

// wrapLines 按 measure 给出的宽度断行
func wrapLines(textStr string, maxWidth float64, measure func(string) float64) []string {
	var lines []string
	for _, paragraph := range strings.Split(textStr, "\n") {
		lines = append(lines, wrapParagraph(paragraph, maxWidth, measure)...)
	}
	return lines
}

func wrapParagraph(paragraph string, maxWidth float64, measure func(string) float64) []string {
	tokens := splitTokens(paragraph)
	if len(tokens) == 0 {
		return []string{""}
	}

	var lines []string
	current := ""
	for _, tok := range tokens {
		candidate := tok
		if current != "" {
			candidate = current + joiner(current, tok) + tok
		}
		if measure(candidate) <= maxWidth {
			current = candidate
			continue
		}

		if current != "" {
			lines = append(lines, current)
			current = ""
		}
		if measure(tok) <= maxWidth {
			current = tok
			continue
		}

		// 单个词超宽：按字符强制断行
		for len(tok) > 0 {
			r, size := utf8.DecodeRuneInString(tok)
			char := string(r)
			if current != "" && measure(current+char) > maxWidth {
				lines = append(lines, current)
				current = ""
			}
			current += char
			tok = tok[size:]
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// splitTokens 英文按空白切分单词，CJK 字符各自成为一个词
func splitTokens(s string) []string {
	var tokens []string
	word := strings.Builder{}
	flush := func() {
		if word.Len() > 0 {
			tokens = append(tokens, word.String())
			word.Reset()
		}
	}
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			flush()
		case isCJK(r):
			flush()
			tokens = append(tokens, string(r))
		default:
			word.WriteRune(r)
		}
	}
	flush()
	return tokens
}

// joiner 两个英文词之间补空格，与 CJK 字符相邻时不补
func joiner(prev, next string) string {
	last, _ := utf8.DecodeLastRuneInString(prev)
	first, _ := utf8.DecodeRuneInString(next)
	if isCJK(last) || isCJK(first) {
		return ""
	}
	return " "
}

func isCJK(r rune) bool {
	return unicode.Is(unicode.Han, r) ||
		unicode.Is(unicode.Hiragana, r) ||
		unicode.Is(unicode.Katakana, r) ||
		unicode.Is(unicode.Hangul, r) ||
		(r >= 0x3000 && r <= 0x303F) || (r >= 0xFF00 && r <= 0xFFEF)
}

// measureTextWidth 测量文本宽度
func measureTextWidth(textStr string, font *text.GoTextFace) float64 {
	if textStr == "" || font == nil {
		return 0
	}

	width, _ := text.Measure(textStr, font, 0)
	return width
}

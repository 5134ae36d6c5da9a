package game

import (
	"regexp"
	"strings"

	"golang.org/x/text/width"
)

// BootstrapCommand starts a new game when no world exists
const BootstrapCommand = "start"

// japanesePattern matches CJK punctuation, kana, half and full width forms and
// kanji (including extension A)
var japanesePattern = regexp.MustCompile(`[\x{3000}-\x{303f}\x{3040}-\x{309f}\x{30a0}-\x{30ff}\x{ff00}-\x{ff9f}\x{4e00}-\x{9faf}\x{3400}-\x{4dbf}]`)

// ContainsJapanese reports whether text has any character that needs validation
func ContainsJapanese(text string) bool {
	return japanesePattern.MatchString(text)
}

// isBootstrap matches the bootstrap command case-insensitively, accepting
// full-width input such as "ｓｔａｒｔ" from a Japanese IME
func isBootstrap(text string) bool {
	return strings.EqualFold(width.Fold.String(text), BootstrapCommand)
}

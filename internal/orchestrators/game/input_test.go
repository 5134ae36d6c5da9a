package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsJapanese(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{name: "ascii command", text: "go north", want: false},
		{name: "hiragana", text: "みる", want: true},
		{name: "katakana", text: "ランタンを取る", want: true},
		{name: "kanji", text: "北", want: true},
		{name: "ideographic space", text: "look　around", want: true},
		{name: "full width latin", text: "ｌｏｏｋ", want: true},
		{name: "accented latin", text: "café", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ContainsJapanese(tt.text))
		})
	}
}

func TestIsBootstrap(t *testing.T) {
	assert.True(t, isBootstrap("start"))
	assert.True(t, isBootstrap("START"))
	assert.True(t, isBootstrap("ｓｔａｒｔ"))
	assert.False(t, isBootstrap("restart"))
	assert.False(t, isBootstrap("start game"))
}

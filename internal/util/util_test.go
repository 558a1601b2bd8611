package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_MakeTextList(t *testing.T) {
	testCases := []struct {
		name     string
		input    []string
		articles bool
		expect   string
	}{
		{name: "empty", input: nil, expect: ""},
		{name: "one", input: []string{"spoon"}, expect: "spoon"},
		{name: "two", input: []string{"spoon", "key"}, expect: "spoon and key"},
		{name: "three", input: []string{"spoon", "key", "box"}, expect: "spoon, key, and box"},
		{name: "articles", input: []string{"spoon", "apple"}, articles: true, expect: "a spoon and an apple"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, MakeTextList(tc.input, tc.articles))
		})
	}
}

func Test_ArticleFor(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("a", ArticleFor("spoon"))
	assert.Equal("an", ArticleFor("egg"))
	assert.Equal("An", ArticleFor("Egg"))
	assert.Equal("AN", ArticleFor("EGG"))
	assert.Equal("A", ArticleFor("Box"))
	assert.Equal("", ArticleFor(""))
}

func Test_OrderedKeys(t *testing.T) {
	m := map[string]int{"Kitchen": 1, "Attic": 2, "Hall": 3}

	assert.Equal(t, []string{"Attic", "Hall", "Kitchen"}, OrderedKeys(m))
}

func Test_KeySet(t *testing.T) {
	assert := assert.New(t)

	s := NewKeySet("north", "south", "east")
	s.Add("north")
	assert.Equal(3, s.Len())
	assert.True(s.Has("east"))

	assert.False(s.Has("west"))

	diff := NewKeySet("west", "north", "up").Difference(s)
	assert.Equal("{up, west}", diff.StringOrdered())
	assert.Equal("{}", NewKeySet[string]().StringOrdered())
}

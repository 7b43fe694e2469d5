package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBackground(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "skip", text: "skip", want: ""},
		{name: "skip with whitespace", text: "  Skip ", want: ""},
		{name: "no background", text: "no background please", want: ""},
		{name: "use default", text: "use default", want: ""},
		{name: "url captured", text: "here https://images.example.com/bg.jpg please", want: "https://images.example.com/bg.jpg"},
		{name: "first url wins", text: "http://a.example/1 http://b.example/2", want: "http://a.example/1"},
		{name: "http mention without url", text: "something about http stuff", want: ""},
		{name: "unrelated text is a no-op", text: "make it blue", want: ""},
		{name: "default beats url", text: "use default https://x.example/bg.png", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Background(tt.text))
		})
	}
}

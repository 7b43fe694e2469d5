package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHero(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		wantHeader    string
		wantSubheader string
	}{
		{
			name:          "two lines",
			text:          "Premium Fashion for Modern Living\n20% off - Limited Time",
			wantHeader:    "Premium Fashion for Modern Living",
			wantSubheader: "20% off - Limited Time",
		},
		{
			name:          "single line has empty subheader",
			text:          "Premium Fashion",
			wantHeader:    "Premium Fashion",
			wantSubheader: "",
		},
		{
			name:          "blank lines discarded",
			text:          "\n\n  Header  \n\n  Sub  \n",
			wantHeader:    "Header",
			wantSubheader: "Sub",
		},
		{
			name:          "extra lines ignored",
			text:          "One\nTwo\nThree",
			wantHeader:    "One",
			wantSubheader: "Two",
		},
		{
			name:          "all blank falls back to trimmed input",
			text:          "   \n  ",
			wantHeader:    "",
			wantSubheader: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header, subheader := Hero(tt.text)
			assert.Equal(t, tt.wantHeader, header)
			assert.Equal(t, tt.wantSubheader, subheader)
		})
	}
}

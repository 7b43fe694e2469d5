package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/threeonelabs/storebuilder/internal/domain"
)

func TestTone(t *testing.T) {
	assert.Equal(t, domain.ToneProfessional, Tone("Professional please"))
	assert.Equal(t, domain.ToneCasual, Tone("keep it casual"))
	assert.Equal(t, domain.ToneLuxury, Tone("LUXURY"))
	assert.Equal(t, domain.ToneFriendly, Tone("friendly"))
	assert.Equal(t, domain.ToneFriendly, Tone("whatever you think"))
	assert.Equal(t, domain.ToneFriendly, Tone(""))
}

package hospital

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Cardiology", DisplayName("cardiology"))
	assert.Equal(t, "Intensive Care", DisplayName("intensive_care"))
	assert.Equal(t, "Emergency Room", DisplayName("emergency room"))
}

func TestDisplayName_MultiByteInitial(t *testing.T) {
	assert.Equal(t, "Ärzteteam", DisplayName("ärzteteam"))
	assert.Equal(t, "Ärzte Über Nacht", DisplayName("ärzte_über_nacht"))
}

package mapper

import (
	"testing"

	"microlearn/models"

	"github.com/stretchr/testify/assert"
)

func TestDisplayIDDeterministic(t *testing.T) {
	id := "a1b2c3d4-0000-4000-8000-123456789abc"
	assert.Equal(t, DisplayID(id), DisplayID(id))
	assert.Equal(t, uint32(0xa1b2c3d4), DisplayID(id))
}

// Two identifiers sharing the same first 8 hex characters collide. This is
// inherent to the derivation, not a defect of the lookup.
func TestDisplayIDCollision(t *testing.T) {
	a := "deadbeef-1111-4000-8000-000000000001"
	b := "deadbeef-2222-4000-8000-000000000002"
	assert.NotEqual(t, a, b)
	assert.Equal(t, DisplayID(a), DisplayID(b))
}

func TestDisplayIDMalformedInput(t *testing.T) {
	assert.Equal(t, uint32(0), DisplayID(""))
	assert.Equal(t, uint32(0), DisplayID("zzzz"))
	// Short but valid hex still parses
	assert.Equal(t, uint32(0xff), DisplayID("ff"))
}

func TestFindContactByDisplayID(t *testing.T) {
	contacts := []models.WhatsAppContact{
		{WAID: "a1b2c3d4-0000-4000-8000-123456789abc", Name: "Alice"},
		{WAID: "0badf00d-0000-4000-8000-123456789abc", Name: "Bob"},
	}

	contact, found := FindContactByDisplayID(contacts, uint32(0x0badf00d))
	assert.True(t, found)
	assert.Equal(t, "Bob", contact.Name)

	_, found = FindContactByDisplayID(contacts, 42)
	assert.False(t, found)
}

package mapper

import (
	"strconv"

	"microlearn/models"
)

// DisplayID derives a compact numeric identifier from an opaque platform
// identifier by parsing its first 8 hex characters as base 16. The mapping
// is lossy: two identifiers sharing the same 8-character prefix collide.
// Malformed or short input maps to 0.
func DisplayID(opaqueID string) uint32 {
	if len(opaqueID) > 8 {
		opaqueID = opaqueID[:8]
	}
	id, err := strconv.ParseUint(opaqueID, 16, 32)
	if err != nil {
		return 0
	}
	return uint32(id)
}

// FindContactByDisplayID resolves a display id back to the contact row it
// was derived from. The derivation is one-way, so resolution is a linear
// scan over the full contact list.
func FindContactByDisplayID(contacts []models.WhatsAppContact, displayID uint32) (*models.WhatsAppContact, bool) {
	for i := range contacts {
		if DisplayID(contacts[i].WAID) == displayID {
			return &contacts[i], true
		}
	}
	return nil, false
}

package domain

import (
	"time"

	"github.com/google/uuid"

	"passgen/pkg/password"
)

// EntryID uniquely identifies a history entry.
type EntryID uuid.UUID

// NewEntryID returns a random EntryID.
func NewEntryID() EntryID { return EntryID(uuid.New()) }

func (id EntryID) String() string { return uuid.UUID(id).String() }

// DefaultHistoryLimit is the number of entries the history keeps.
const DefaultHistoryLimit = 50

// HistoryEntry is a previously generated password. Entries are listed
// most-recent-first.
type HistoryEntry struct {
	// ID is the unique identifier of the entry.
	ID EntryID `json:"id"`
	// Password is the generated value.
	Password string `json:"password"`
	// Strength is the label computed when the password was generated.
	Strength password.Strength `json:"strength"`
	// CreatedAt is the time the password was generated.
	CreatedAt time.Time `json:"createdAt"`
}

// MarshalText encodes the ID in its canonical UUID form.
func (id EntryID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText decodes a UUID string.
func (id *EntryID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(b)
}

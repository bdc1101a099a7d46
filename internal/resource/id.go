package resource

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// GlobalID is the zero value of ID, representing the ID of the abstract
// top-level "global" entity to which all resources belong.
var GlobalID = ID{}

type ID struct {
	id uuid.UUID
	// Kind of resource, e.g. grid, session, etc.
	kind Kind
}

func NewID(k Kind) ID {
	return ID{
		id:   uuid.New(),
		kind: k,
	}
}

func (id ID) Kind() Kind { return id.kind }

func (id ID) String() string {
	return fmt.Sprintf("%s-%s", id.kind.String(), id.id.String())
}

func (id ID) LogValue() slog.Value {
	return slog.StringValue(id.String())
}

package armature

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// MissingNodesError lists the program entries whose nodes were not found in
// the store during Run. It unwraps to ErrNodeNotFound.
type MissingNodesError struct {
	Missing []NodeIdentity
}

func (e *MissingNodesError) Error() string {
	names := make([]string, len(e.Missing))
	for i, id := range e.Missing {
		names[i] = id.String()
	}
	return fmt.Sprintf("%v: %s", ErrNodeNotFound, strings.Join(names, ", "))
}

func (e *MissingNodesError) Unwrap() error {
	return ErrNodeNotFound
}

// Run starts every entry of program on store, in program order. An entry
// whose node is missing is reported as a consistency warning and collected
// into the returned *MissingNodesError; the remaining entries still start.
// Any other store failure aborts immediately.
func Run(program *Program, store NodeStore) error {
	var missing []NodeIdentity
	for _, e := range program.Entries() {
		err := store.RunComposition(e.Node, e.Composition)
		switch {
		case err == nil:
		case errors.Is(err, ErrNodeNotFound):
			warnf("run %s: node %d not in store", e.Identity, e.Node)
			missing = append(missing, e.Identity)
		default:
			return errors.Wrapf(err, "run %s", e.Identity)
		}
	}
	if len(missing) > 0 {
		return &MissingNodesError{Missing: missing}
	}
	return nil
}

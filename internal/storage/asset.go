package storage

import (
	"fmt"
	"regexp"

	"github.com/pixil98/go-errors"
)

// identifierPattern keeps asset ids usable as command arguments and NATS
// subject tokens.
var identifierPattern = regexp.MustCompile(`^[a-zA-Z0-9-]*$`)

// ValidatingSpec is implemented by every asset payload a FileStore can hold:
// weapon and armor definitions, places and seeded actors.
type ValidatingSpec interface {
	Validate() error
}

// Identifier names an asset. Weapon and armor ids are what items refer to
// as their schema; place and actor ids seed the world.
type Identifier string

func (id Identifier) String() string {
	return string(id)
}

// Asset is the on-disk envelope around a spec, shared by JSON and YAML
// content files.
type Asset[T ValidatingSpec] struct {
	Version    uint       `json:"version"`
	Identifier Identifier `json:"id"`
	Spec       T          `json:"spec"`
}

func (a *Asset[T]) Id() Identifier {
	return a.Identifier
}

// Validate checks the envelope and the payload and reports every problem.
func (a *Asset[T]) Validate() error {
	el := errors.NewErrorList()

	if a.Version == 0 {
		el.Add(fmt.Errorf("version must be set"))
	}

	if a.Identifier == "" {
		el.Add(fmt.Errorf("id must be set"))
	}

	if !identifierPattern.MatchString(a.Identifier.String()) {
		el.Add(fmt.Errorf("id must be alphanumeric"))
	}

	el.Add(a.Spec.Validate())

	return el.Err()
}

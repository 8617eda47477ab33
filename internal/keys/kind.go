package keys

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Kind selects the private or public half of a key pair.
type Kind string

const (
	Private Kind = "private"
	Public  Kind = "public"
)

var _ pflag.Value = (*Kind)(nil)

func (k *Kind) String() string { return string(*k) }

// Set parses a kind from a command-line flag.
func (k *Kind) Set(v string) error {
	switch Kind(v) {
	case Private, Public:
		*k = Kind(v)
		return nil
	default:
		return fmt.Errorf("key kind must be %q or %q, got %q", Private, Public, v)
	}
}

func (k *Kind) Type() string { return "kind" }

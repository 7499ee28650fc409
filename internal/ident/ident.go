package ident

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/mr-tron/base58"
)

// Generator produces identifiers that are unique within one conversion run.
type Generator interface {
	New(prefix string) string
}

// Random generates identifiers from random (v4) UUIDs.
type Random struct{}

// NewRandom returns a generator backed by random UUIDs.
func NewRandom() *Random {
	return &Random{}
}

// New returns PREFIX_<base58 uuid>.
func (*Random) New(prefix string) string {
	return format(prefix, uuid.New())
}

// Seeded generates a reproducible identifier sequence.
// Not safe for concurrent use.
type Seeded struct {
	namespace uuid.UUID
	counter   uint64
}

// NewSeeded returns a generator whose sequence depends only on seed.
func NewSeeded(seed string) *Seeded {
	return &Seeded{namespace: uuid.NewSHA1(uuid.NameSpaceURL, []byte(seed))}
}

// New returns the next identifier of the sequence.
func (s *Seeded) New(prefix string) string {
	s.counter++

	return format(prefix, uuid.NewSHA1(s.namespace, []byte(strconv.FormatUint(s.counter, 10))))
}

// Derive returns an identifier that depends only on prefix and name, so a
// record keyed by an external identifier keeps its ReqIF identifier across runs.
func Derive(prefix, name string) string {
	return format(prefix, uuid.NewSHA1(uuid.NameSpaceDNS, []byte(name)))
}

func format(prefix string, u uuid.UUID) string {
	return prefix + "_" + base58.Encode(u[:])
}

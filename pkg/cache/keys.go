package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
)

// Keyer derives cache keys for rendered artifacts.
type Keyer interface {
	// ArtifactKey returns the key of one output format of a chart request.
	ArtifactKey(requestHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts holds the output options that change artifact bytes.
type ArtifactKeyOpts struct {
	Format string
	Frames int
	Static bool
	AtMS   int64
	Scale  float64
	Title  string
}

// fields lists the options in a fixed order for hashing. Title is quoted so
// a title containing the separator cannot alias another option set.
func (o ArtifactKeyOpts) fields() []string {
	return []string{
		o.Format,
		strconv.Itoa(o.Frames),
		strconv.FormatBool(o.Static),
		strconv.FormatInt(o.AtMS, 10),
		strconv.FormatFloat(o.Scale, 'g', -1, 64),
		strconv.Quote(o.Title),
	}
}

// DefaultKeyer produces keys of the form "artifact:<format>:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ArtifactKey implements [Keyer].
func (DefaultKeyer) ArtifactKey(requestHash string, opts ArtifactKeyOpts) string {
	parts := append([]string{requestHash}, opts.fields()...)
	return "artifact:" + opts.Format + ":" + Hash([]byte(strings.Join(parts, "\x1f")))
}

// ScopedKeyer prefixes every key of an inner [Keyer]. The server scopes keys
// by release so a new renderer never serves artifacts drawn by an old one:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), buildinfo.CacheScope("cronut"))
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner (the default keyer when nil) with prefix.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// ArtifactKey implements [Keyer].
func (k *ScopedKeyer) ArtifactKey(requestHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(requestHash, opts)
}

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

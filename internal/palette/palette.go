// Package palette composes named multi-colour palettes (primary, secondary,
// accent and neutral roles) from the harmonies in the colour package.
package palette

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/jmylchreest/harmonia/internal/colour"
)

// Kind names a palette recipe.
type Kind string

const (
	KindAlpha            Kind = "alpha"
	KindBeta             Kind = "beta"
	KindGamma            Kind = "gamma"
	KindProTetradic      Kind = "pro-tetradic"
	KindProComplementary Kind = "pro-complementary"
	KindMix              Kind = "mix"
)

// Kinds returns every supported palette kind.
func Kinds() []Kind {
	return []Kind{KindAlpha, KindBeta, KindGamma, KindProTetradic, KindProComplementary, KindMix}
}

// ParseKind converts a string to a Kind.
// Returns an error if the string is not a valid kind.
func ParseKind(s string) (Kind, error) {
	kind := Kind(strings.ToLower(s))
	if slices.Contains(Kinds(), kind) {
		return kind, nil
	}
	names := make([]string, 0, len(Kinds()))
	for _, k := range Kinds() {
		names = append(names, string(k))
	}
	return "", fmt.Errorf("invalid palette kind: %s (valid: %s)", s, strings.Join(names, ", "))
}

// Group is an ordered run of colours sharing a role, e.g. one tonal ladder.
type Group []colour.Value

// Palette maps semantic roles to groups of colours. Roles holding a single
// colour use a one-element group.
type Palette struct {
	Kind      Kind    `json:"kind"`
	Base      string  `json:"base"`
	Primary   Group   `json:"primary"`
	Secondary []Group `json:"secondary"`
	Accent    []Group `json:"accent"`
	Neutral   Group   `json:"neutral,omitempty"`
}

// ToJSON converts the palette to indented JSON.
func (p *Palette) ToJSON() ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}

// Role is one named row of a palette, used when rendering.
type Role struct {
	Name   string
	Groups []Group
}

// Roles lists the palette's roles in display order, skipping empty ones.
func (p *Palette) Roles() []Role {
	roles := []Role{
		{Name: "primary", Groups: []Group{p.Primary}},
		{Name: "secondary", Groups: p.Secondary},
		{Name: "accent", Groups: p.Accent},
	}
	if len(p.Neutral) > 0 {
		roles = append(roles, Role{Name: "neutral", Groups: []Group{p.Neutral}})
	}
	return roles
}

// Len returns the total number of colours in the palette.
func (p *Palette) Len() int {
	n := 0
	for _, r := range p.Roles() {
		for _, g := range r.Groups {
			n += len(g)
		}
	}
	return n
}

// String returns a human-readable representation of the palette.
func (p *Palette) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s palette (base %s):\n", p.Kind, p.Base)
	for _, r := range p.Roles() {
		for i, g := range r.Groups {
			label := r.Name
			if len(r.Groups) > 1 {
				label = fmt.Sprintf("%s-%d", r.Name, i+1)
			}
			fmt.Fprintf(&b, "  %-12s %s\n", label, strings.Join(colour.Strings(g), " "))
		}
	}
	return b.String()
}

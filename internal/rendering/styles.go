package rendering

import (
	"fmt"
	"sort"
)

// Page geometry in points. These never vary per request.
const (
	PageWidth     = 612.0
	PageHeight    = 792.0
	Margin        = 54.0
	ContentWidth  = PageWidth - 2*Margin
	ContentBottom = PageHeight - Margin

	// LineHeightRatio converts a font size into a line height
	LineHeightRatio = 1.2
)

// FontProfile names a font family triple
type FontProfile string

const (
	ProfileSans  FontProfile = "sans"
	ProfileSerif FontProfile = "serif"
	ProfileMono  FontProfile = "mono"
)

// DensityPreset names a size and spacing table
type DensityPreset string

const (
	DensityNormal       DensityPreset = "normal"
	DensityCompact      DensityPreset = "compact"
	DensityUltraCompact DensityPreset = "ultra-compact"
)

// Defaults used when a request names no style
const (
	DefaultProfile = ProfileSans
	DefaultDensity = DensityNormal
)

// FontFace is a font family plus a style string ("" regular, "B" bold)
type FontFace struct {
	Family string `json:"family"`
	Style  string `json:"style,omitempty"`
}

// FontPair is the body and bold face of one profile
type FontPair struct {
	Body FontFace `json:"body"`
	Bold FontFace `json:"bold"`
}

// Sizes are point sizes per text role
type Sizes struct {
	H1      float64 `json:"h1"`
	H2      float64 `json:"h2"`
	H3      float64 `json:"h3"`
	Body    float64 `json:"body"`
	Contact float64 `json:"contact"`
}

// Spacing holds the trailing vertical space after each element type, in points
type Spacing struct {
	AfterName      float64 `json:"after_name"`
	AfterHeading   float64 `json:"after_heading"`
	AfterParagraph float64 `json:"after_paragraph"`
	AfterText      float64 `json:"after_text"`
	AfterContact   float64 `json:"after_contact"`
	AfterList      float64 `json:"after_list"`
	ListItemGap    float64 `json:"list_item_gap"`
	SectionBreak   float64 `json:"section_break"`
}

// Density is the size and spacing table of one preset.
// ParagraphMinLines and ListItemMinLines are the free lines required
// before a paragraph or list item may start on the current page.
type Density struct {
	Sizes             Sizes   `json:"sizes"`
	Spacing           Spacing `json:"spacing"`
	ParagraphMinLines float64 `json:"paragraph_min_lines"`
	ListItemMinLines  float64 `json:"list_item_min_lines"`
	BulletIndent      float64 `json:"bullet_indent"`
}

// StyleConfig is a resolved font profile and density. It is a value type;
// renders never modify it.
type StyleConfig struct {
	Profile FontProfile   `json:"profile"`
	Density DensityPreset `json:"density"`
	Fonts   FontPair      `json:"fonts"`
	Layout  Density       `json:"layout"`
}

// LineHeight returns the line height for text of the given size
func (s StyleConfig) LineHeight(size float64) float64 {
	return size * LineHeightRatio
}

// HeadingSize returns the font size for a heading level
func (s StyleConfig) HeadingSize(level int) float64 {
	switch level {
	case 1:
		return s.Layout.Sizes.H1
	case 2:
		return s.Layout.Sizes.H2
	default:
		return s.Layout.Sizes.H3
	}
}

// Registry maps profile and density names to style data
type Registry struct {
	fonts     map[FontProfile]FontPair
	densities map[DensityPreset]Density
}

// DefaultRegistry returns the built-in styles. Fonts are the PDF core fonts.
func DefaultRegistry() *Registry {
	return &Registry{
		fonts: map[FontProfile]FontPair{
			ProfileSans: {
				Body: FontFace{Family: "Helvetica"},
				Bold: FontFace{Family: "Helvetica", Style: "B"},
			},
			ProfileSerif: {
				Body: FontFace{Family: "Times"},
				Bold: FontFace{Family: "Times", Style: "B"},
			},
			ProfileMono: {
				Body: FontFace{Family: "Courier"},
				Bold: FontFace{Family: "Courier", Style: "B"},
			},
		},
		densities: map[DensityPreset]Density{
			DensityNormal: {
				Sizes: Sizes{H1: 20, H2: 13, H3: 11, Body: 10, Contact: 9},
				Spacing: Spacing{
					AfterName: 2, AfterHeading: 4, AfterParagraph: 6, AfterText: 2,
					AfterContact: 6, AfterList: 4, ListItemGap: 2, SectionBreak: 10,
				},
				ParagraphMinLines: 3,
				ListItemMinLines:  2,
				BulletIndent:      12,
			},
			DensityCompact: {
				Sizes: Sizes{H1: 18, H2: 12, H3: 10.5, Body: 9.5, Contact: 8.5},
				Spacing: Spacing{
					AfterName: 1.5, AfterHeading: 3, AfterParagraph: 4, AfterText: 1.5,
					AfterContact: 4, AfterList: 3, ListItemGap: 1.5, SectionBreak: 7,
				},
				ParagraphMinLines: 3,
				ListItemMinLines:  2,
				BulletIndent:      11,
			},
			DensityUltraCompact: {
				Sizes: Sizes{H1: 16, H2: 11, H3: 10, Body: 9, Contact: 8},
				Spacing: Spacing{
					AfterName: 1, AfterHeading: 2, AfterParagraph: 3, AfterText: 1,
					AfterContact: 3, AfterList: 2, ListItemGap: 1, SectionBreak: 5,
				},
				ParagraphMinLines: 2,
				ListItemMinLines:  2,
				BulletIndent:      10,
			},
		},
	}
}

// Lookup resolves a profile and density into a StyleConfig. Empty names
// select the defaults.
func (r *Registry) Lookup(profile, density string) (StyleConfig, error) {
	if profile == "" {
		profile = string(DefaultProfile)
	}
	if density == "" {
		density = string(DefaultDensity)
	}

	fonts, ok := r.fonts[FontProfile(profile)]
	if !ok {
		return StyleConfig{}, fmt.Errorf("%w: font profile %q", ErrUnknownStyle, profile)
	}
	layout, ok := r.densities[DensityPreset(density)]
	if !ok {
		return StyleConfig{}, fmt.Errorf("%w: density preset %q", ErrUnknownStyle, density)
	}
	return StyleConfig{
		Profile: FontProfile(profile),
		Density: DensityPreset(density),
		Fonts:   fonts,
		Layout:  layout,
	}, nil
}

// Profiles returns the known font profile names, sorted
func (r *Registry) Profiles() []string {
	names := make([]string, 0, len(r.fonts))
	for name := range r.fonts {
		names = append(names, string(name))
	}
	sort.Strings(names)
	return names
}

// Densities returns the known density preset names from loosest to tightest
func (r *Registry) Densities() []string {
	names := make([]string, 0, len(r.densities))
	for name := range r.densities {
		names = append(names, string(name))
	}
	sort.Slice(names, func(i, j int) bool {
		return r.densities[DensityPreset(names[i])].Sizes.Body > r.densities[DensityPreset(names[j])].Sizes.Body
	})
	return names
}

// DefaultStyle returns the default profile at the default density
func DefaultStyle() StyleConfig {
	style, err := DefaultRegistry().Lookup("", "")
	if err != nil {
		panic(err)
	}
	return style
}

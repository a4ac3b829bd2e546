package format

// Logo describes the brand logo block emitted at the bottom of a
// signature. Style carries the inline width/height override used by
// Outlook when the pixel attributes are ignored.
type Logo struct {
	Src    string `yaml:"src" json:"src"`
	Href   string `yaml:"href" json:"href"`
	Width  int    `yaml:"width" json:"width"`
	Height int    `yaml:"height" json:"height"`
	Style  string `yaml:"style" json:"style"`
	Alt    string `yaml:"alt" json:"alt"`
}

// SocialIcon is one entry in the ordered icon footer.
type SocialIcon struct {
	Href string `yaml:"href" json:"href"`
	Src  string `yaml:"src" json:"src"`
	Alt  string `yaml:"alt" json:"alt"`
	Size int    `yaml:"size" json:"size"`
}

// DefaultIconSpacing separates footer icons unless a bundle overrides it.
const DefaultIconSpacing = "&nbsp;&nbsp;&nbsp;"

// Bundle is the full style/asset description of one signature brand
// variant. Bundles are immutable once registered; callers receive
// copies and cannot mutate registry state through them.
type Bundle struct {
	ID    string `yaml:"id" json:"id"`
	Label string `yaml:"label" json:"label"`

	BorderColor string `yaml:"borderColor" json:"borderColor"`

	NameFont  string `yaml:"nameFont" json:"nameFont"`
	NameSize  string `yaml:"nameSize" json:"nameSize"`
	NameColor string `yaml:"nameColor" json:"nameColor"`

	TitleFont  string `yaml:"titleFont" json:"titleFont"`
	TitleSize  string `yaml:"titleSize" json:"titleSize"`
	TitleColor string `yaml:"titleColor" json:"titleColor"`

	ContactFont  string `yaml:"contactFont" json:"contactFont"`
	ContactSize  string `yaml:"contactSize" json:"contactSize"`
	ContactColor string `yaml:"contactColor" json:"contactColor"`

	AddressFont  string `yaml:"addressFont" json:"addressFont"`
	AddressSize  string `yaml:"addressSize" json:"addressSize"`
	AddressColor string `yaml:"addressColor" json:"addressColor"`
	AddressBold  bool   `yaml:"addressBold,omitempty" json:"addressBold,omitempty"`

	LineColor  string `yaml:"lineColor" json:"lineColor"`
	LineWeight string `yaml:"lineWeight" json:"lineWeight"`

	Logo        Logo         `yaml:"logo" json:"logo"`
	SocialIcons []SocialIcon `yaml:"socialIcons" json:"socialIcons"`

	// IconSpacing overrides DefaultIconSpacing when non-empty.
	IconSpacing string `yaml:"iconSpacing,omitempty" json:"iconSpacing,omitempty"`
}

// Spacing returns the separator placed between footer icons.
func (b Bundle) Spacing() string {
	if b.IconSpacing != "" {
		return b.IconSpacing
	}
	return DefaultIconSpacing
}

func (b Bundle) clone() Bundle {
	out := b
	if b.SocialIcons != nil {
		out.SocialIcons = append([]SocialIcon{}, b.SocialIcons...)
	}
	return out
}

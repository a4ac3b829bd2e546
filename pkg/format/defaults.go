package format

// Wellbound is the primary home-care brand bundle and the registry
// default.
func Wellbound() Bundle {
	return Bundle{
		ID:           "wellbound",
		Label:        "Wellbound",
		BorderColor:  "#561640",
		NameFont:     "'Verdana',sans-serif",
		NameSize:     "12pt",
		NameColor:    "#561640",
		TitleFont:    "'Calibri',sans-serif",
		TitleSize:    "9pt",
		TitleColor:   "#98788f",
		ContactFont:  "'Abadi','Calibri',sans-serif",
		ContactSize:  "12pt",
		ContactColor: "#561640",
		AddressFont:  "'Verdana',sans-serif",
		AddressSize:  "8pt",
		AddressColor: "#98788f",
		LineColor:    "#561640",
		LineWeight:   "1.5pt",
		Logo: Logo{
			Src:    "imgs/logo.png",
			Href:   "http://wellboundhc.com/",
			Width:  137,
			Height: 39,
			Style:  "width:1.91in;height:0.54in",
			Alt:    "Wellbound Certified Home Health Agency",
		},
		SocialIcons: []SocialIcon{
			{Href: "https://www.facebook.com/wellbound.homecare", Src: "imgs/facebook icon.png", Alt: "Facebook", Size: 22},
			{Href: "https://www.linkedin.com/company/75448188/admin/feed/posts/", Src: "imgs/linked in icon.png", Alt: "LinkedIn", Size: 22},
		},
	}
}

// SpecialNeeds is the secondary brand bundle used by the special-needs
// program.
func SpecialNeeds() Bundle {
	return Bundle{
		ID:           "special-needs",
		Label:        "Special Needs",
		BorderColor:  "#252347",
		NameFont:     "'Verdana',sans-serif",
		NameSize:     "12pt",
		NameColor:    "#252347",
		TitleFont:    "'Calibri',sans-serif",
		TitleSize:    "9pt",
		TitleColor:   "#372f87",
		ContactFont:  "'Abadi','Calibri',sans-serif",
		ContactSize:  "12pt",
		ContactColor: "#252347",
		AddressFont:  "'Verdana',sans-serif",
		AddressSize:  "8pt",
		AddressColor: "#252347",
		AddressBold:  true,
		LineColor:    "#252347",
		LineWeight:   "1.5pt",
		Logo: Logo{
			Src:    "imgs/logoSN.png",
			Href:   "http://wellboundhc.com/",
			Width:  137,
			Height: 39,
			Style:  "width:1.91in;height:0.54in",
			Alt:    "Wellbound For Special Needs",
		},
		IconSpacing: "&nbsp;",
		SocialIcons: []SocialIcon{
			{Href: "https://www.instagram.com/wellboundspecialneeds/", Src: "imgs/linked in iconSN.png", Alt: "Instagram", Size: 22},
			{Href: "https://www.facebook.com/wellbound.homecare", Src: "imgs/facebook iconSN.png", Alt: "Facebook", Size: 22},
		},
	}
}

// NewDefaultRegistry returns a registry seeded with the built-in brand
// bundles.
func NewDefaultRegistry() *Registry {
	registry := NewRegistry()
	registry.MustRegister(Wellbound())
	registry.MustRegister(SpecialNeeds())
	return registry
}

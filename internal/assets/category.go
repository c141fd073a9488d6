package assets

// Category tags a certificate with the folder it was filed under.
// Gallery records carry the zero value.
type Category string

const (
	CategoryNone      Category = ""
	CategoryLinkedIn  Category = "linkedin"
	CategoryCoursera  Category = "coursera"
	CategoryHackathon Category = "hackathon"
	CategoryWorkshop  Category = "workshop"
	CategoryMeetings  Category = "meetings"
	CategoryOther     Category = "other"
)

// Categories lists every certificate category in display order.
var Categories = []Category{
	CategoryLinkedIn,
	CategoryCoursera,
	CategoryHackathon,
	CategoryWorkshop,
	CategoryMeetings,
	CategoryOther,
}

// CategoryMeta is the presentation metadata shown on a certificate card.
type CategoryMeta struct {
	Label       string `json:"label"`
	Issuer      string `json:"issuer"`
	Badge       string `json:"badge"`
	Color       string `json:"color"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// ParseCategory accepts only the enumerated category keys.
func ParseCategory(key string) (Category, bool) {
	switch c := Category(key); c {
	case CategoryLinkedIn, CategoryCoursera, CategoryHackathon,
		CategoryWorkshop, CategoryMeetings, CategoryOther:
		return c, true
	}
	return CategoryNone, false
}

// String returns the category key.
func (c Category) String() string { return string(c) }

// Meta maps a category to its card metadata. Anything outside the
// enumeration is presented as "other".
func (c Category) Meta() CategoryMeta {
	switch c {
	case CategoryLinkedIn:
		return CategoryMeta{
			Label:       "LinkedIn",
			Issuer:      "LinkedIn Learning",
			Badge:       "Certificate",
			Color:       "secondary",
			Icon:        "palette",
			Description: "Certificates and skill badges completed on LinkedIn Learning.",
		}
	case CategoryCoursera:
		return CategoryMeta{
			Label:       "Coursera",
			Issuer:      "Coursera",
			Badge:       "Certificate",
			Color:       "primary",
			Icon:        "cloud",
			Description: "Coursera courses and specializations you finished.",
		}
	case CategoryHackathon:
		return CategoryMeta{
			Label:       "Hackathon",
			Issuer:      "Hackathon",
			Badge:       "Participation",
			Color:       "primary",
			Icon:        "trophy",
			Description: "Hackathon participation and winner certificates.",
		}
	case CategoryWorkshop:
		return CategoryMeta{
			Label:       "Workshop",
			Issuer:      "Workshop",
			Badge:       "Participation",
			Color:       "accent",
			Icon:        "code",
			Description: "Workshops or bootcamps you attended.",
		}
	case CategoryMeetings:
		return CategoryMeta{
			Label:       "Meetings",
			Issuer:      "Meetups",
			Badge:       "Participation",
			Color:       "secondary",
			Icon:        "medal",
			Description: "Community meetups or talks you joined.",
		}
	default:
		return CategoryMeta{
			Label:       "Other",
			Issuer:      "Certificate",
			Badge:       "Certificate",
			Color:       "primary",
			Icon:        "award",
			Description: "Miscellaneous certificates.",
		}
	}
}

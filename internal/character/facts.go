// Package character holds the static fact sheet served by the MCP tool and
// the category projection logic that selects which fields go into a response.
package character

// Category selects which subset of the fact sheet a projection returns.
type Category string

const (
	CategoryAll        Category = "all"
	CategoryBasic      Category = "basic"
	CategoryPowers     Category = "powers"
	CategoryOrigin     Category = "origin"
	CategoryWeaknesses Category = "weaknesses"
)

// Categories lists every valid category tag, used for tool schema enums.
func Categories() []string {
	return []string{
		string(CategoryAll),
		string(CategoryBasic),
		string(CategoryPowers),
		string(CategoryOrigin),
		string(CategoryWeaknesses),
	}
}

// ParseCategory maps an input string to a Category. Every input maps to a
// defined variant: empty or unrecognized strings fall back to CategoryAll,
// matching the permissive behavior callers rely on.
func ParseCategory(s string) Category {
	switch Category(s) {
	case CategoryBasic:
		return CategoryBasic
	case CategoryPowers:
		return CategoryPowers
	case CategoryOrigin:
		return CategoryOrigin
	case CategoryWeaknesses:
		return CategoryWeaknesses
	default:
		return CategoryAll
	}
}

// Publication holds publication metadata for the character.
type Publication struct {
	FirstAppearance string   `json:"first_appearance"`
	Publisher       string   `json:"publisher"`
	Creators        []string `json:"creators"`
}

// Physical holds the physical description fields.
type Physical struct {
	Height string `json:"height"`
	Weight string `json:"weight"`
	Eyes   string `json:"eyes"`
	Hair   string `json:"hair"`
}

// FactSheet is the complete set of character attributes. It is created once
// at process start and never mutated afterwards.
type FactSheet struct {
	Name              string            `json:"name"`
	AlternateIdentity string            `json:"alternate_identity"`
	FullName          string            `json:"full_name"`
	Publication       Publication       `json:"publication"`
	Physical          Physical          `json:"physical"`
	Powers            []string          `json:"powers"`
	Weaknesses        []string          `json:"weaknesses"`
	Origin            string            `json:"origin"`
	Associates        map[string]string `json:"associates"`
	Motto             string            `json:"motto"`
}

// DefaultFactSheet returns the built-in Superman fact sheet.
func DefaultFactSheet() *FactSheet {
	return &FactSheet{
		Name:              "Superman",
		AlternateIdentity: "Clark Kent",
		FullName:          "Kal-El",
		Publication: Publication{
			FirstAppearance: "Action Comics #1 (1938)",
			Publisher:       "DC Comics",
			Creators:        []string{"Jerry Siegel", "Joe Shuster"},
		},
		Physical: Physical{
			Height: "6'3\" (191 cm)",
			Weight: "235 lbs (107 kg)",
			Eyes:   "Blue",
			Hair:   "Black",
		},
		Powers: []string{
			"Flight",
			"Super strength",
			"Super speed",
			"Invulnerability",
			"Heat vision",
			"X-ray vision",
			"Freeze breath",
			"Super hearing",
			"Accelerated healing",
		},
		Weaknesses: []string{
			"Kryptonite",
			"Magic",
			"Red sun radiation",
		},
		Origin: "Born Kal-El on the planet Krypton, he was rocketed to Earth as an " +
			"infant by his scientist father Jor-El moments before Krypton's " +
			"destruction. Discovered and raised by Jonathan and Martha Kent in " +
			"Smallville, Kansas, he developed extraordinary abilities under " +
			"Earth's yellow sun and grew up to defend his adopted world as " +
			"Superman.",
		Associates: map[string]string{
			"love_interest":    "Lois Lane",
			"best_friend":      "Jimmy Olsen",
			"arch_nemesis":     "Lex Luthor",
			"adoptive_parents": "Jonathan and Martha Kent",
			"cousin":           "Supergirl (Kara Zor-El)",
		},
		Motto: "Truth, justice, and a better tomorrow",
	}
}

// Project returns the subset of the fact sheet selected by the category.
// The result is a fresh map on every call so callers can serialize it
// without touching shared state.
func (f *FactSheet) Project(cat Category) map[string]interface{} {
	switch cat {
	case CategoryBasic:
		return map[string]interface{}{
			"name":               f.Name,
			"alternate_identity": f.AlternateIdentity,
			"full_name":          f.FullName,
			"publication":        f.Publication,
			"physical":           f.Physical,
			"associates":         f.Associates,
			"motto":              f.Motto,
		}
	case CategoryPowers:
		return map[string]interface{}{
			"name":   f.Name,
			"powers": f.Powers,
		}
	case CategoryOrigin:
		return map[string]interface{}{
			"name":               f.Name,
			"alternate_identity": f.AlternateIdentity,
			"origin":             f.Origin,
		}
	case CategoryWeaknesses:
		return map[string]interface{}{
			"name":       f.Name,
			"weaknesses": f.Weaknesses,
		}
	default:
		return map[string]interface{}{
			"name":               f.Name,
			"alternate_identity": f.AlternateIdentity,
			"full_name":          f.FullName,
			"publication":        f.Publication,
			"physical":           f.Physical,
			"powers":             f.Powers,
			"weaknesses":         f.Weaknesses,
			"origin":             f.Origin,
			"associates":         f.Associates,
			"motto":              f.Motto,
		}
	}
}

package flavor

// Alternative pairs a common food adulterant with a safe ingredient
// substitute for the consumer-facing FlavorDB view.
type Alternative struct {
	ToxicChemical   string `json:"toxic_chemical"`
	SafeAlternative string `json:"safe_alternative"`
	Benefit         string `json:"benefit"`
}

// curated static table; there is no upstream source for this data
var alternatives = []Alternative{
	{
		ToxicChemical:   "Metanil Yellow",
		SafeAlternative: "Pure Turmeric",
		Benefit:         "Natural golden color with anti-inflammatory curcumin instead of a banned dye.",
	},
	{
		ToxicChemical:   "Argemone Oil",
		SafeAlternative: "Cold-Pressed Mustard Oil",
		Benefit:         "Authentic pungency and omega-3 fats without the risk of epidemic dropsy.",
	},
	{
		ToxicChemical:   "Brick Powder",
		SafeAlternative: "Kashmiri Red Chilli",
		Benefit:         "Deep red color and mild heat from a real spice, not ground masonry.",
	},
	{
		ToxicChemical:   "Synthetic Milk Solids",
		SafeAlternative: "Khoya from Full-Cream Milk",
		Benefit:         "Real dairy protein and fat; no urea or detergent residue.",
	},
	{
		ToxicChemical:   "Chalk Powder",
		SafeAlternative: "Stone-Ground Wheat Flour",
		Benefit:         "Whole-grain fiber and minerals without inert filler.",
	},
}

// Alternatives returns the full substitution table
func Alternatives() []Alternative {
	return alternatives
}

package profile

import "github.com/poiesic/yojana/core"

// dialectMarkers are Bhojpuri function words that do not occur in standard
// Hindi. A single hit in Devanagari text selects Bhojpuri.
var dialectMarkers = []string{
	"बा", "बाटे", "बानी", "बाड़ी", "हवे", "हउवे", "रहल", "मिलल", "गइल",
	"हमार", "तोहार", "हमनी", "रउआ", "केहू", "कवनो", "कइसे", "चाहीं",
}

var maleTokens = []string{
	"male", "man", "men", "boy", "husband", "father", "son", "widower",
	"पुरुष", "आदमी", "लड़का", "पति", "मरद", "बेटा",
}

var femaleTokens = []string{
	"female", "woman", "women", "girl", "wife", "mother", "daughter", "widow", "pregnant",
	"महिला", "औरत", "लड़की", "पत्नी", "मेहरारू", "बेटी", "विधवा", "गर्भवती",
}

// region is one state or union territory with every spelling we accept.
type region struct {
	name    string
	aliases []string
}

var regions = []region{
	{"andhra pradesh", []string{"andhra pradesh", "andhra", "आंध्र प्रदेश", "आन्ध्र प्रदेश"}},
	{"arunachal pradesh", []string{"arunachal pradesh", "arunachal", "अरुणाचल प्रदेश"}},
	{"assam", []string{"assam", "असम"}},
	{"bihar", []string{"bihar", "बिहार"}},
	{"chhattisgarh", []string{"chhattisgarh", "chattisgarh", "छत्तीसगढ़"}},
	{"goa", []string{"goa", "गोवा"}},
	{"gujarat", []string{"gujarat", "गुजरात"}},
	{"haryana", []string{"haryana", "हरियाणा", "हरियाना"}},
	{"himachal pradesh", []string{"himachal pradesh", "himachal", "हिमाचल प्रदेश"}},
	{"jharkhand", []string{"jharkhand", "झारखंड", "झारखण्ड"}},
	{"karnataka", []string{"karnataka", "कर्नाटक"}},
	{"kerala", []string{"kerala", "केरल"}},
	{"madhya pradesh", []string{"madhya pradesh", "मध्य प्रदेश"}},
	{"maharashtra", []string{"maharashtra", "महाराष्ट्र"}},
	{"manipur", []string{"manipur", "मणिपुर"}},
	{"meghalaya", []string{"meghalaya", "मेघालय"}},
	{"mizoram", []string{"mizoram", "मिजोरम", "मिज़ोरम"}},
	{"nagaland", []string{"nagaland", "नागालैंड"}},
	{"odisha", []string{"odisha", "orissa", "ओडिशा", "ओड़िशा", "उड़ीसा"}},
	{"punjab", []string{"punjab", "पंजाब"}},
	{"rajasthan", []string{"rajasthan", "राजस्थान"}},
	{"sikkim", []string{"sikkim", "सिक्किम"}},
	{"tamil nadu", []string{"tamil nadu", "tamilnadu", "तमिलनाडु", "तमिल नाडु"}},
	{"telangana", []string{"telangana", "तेलंगाना"}},
	{"tripura", []string{"tripura", "त्रिपुरा"}},
	{"uttar pradesh", []string{"uttar pradesh", "उत्तर प्रदेश"}},
	{"uttarakhand", []string{"uttarakhand", "uttaranchal", "उत्तराखंड", "उत्तराखण्ड"}},
	{"west bengal", []string{"west bengal", "bengal", "पश्चिम बंगाल", "बंगाल"}},
	{"andaman and nicobar islands", []string{"andaman and nicobar islands", "andaman and nicobar", "andaman", "अंडमान और निकोबार", "अंडमान"}},
	{"chandigarh", []string{"chandigarh", "चंडीगढ़"}},
	{"dadra and nagar haveli and daman and diu", []string{"dadra and nagar haveli and daman and diu", "dadra and nagar haveli", "daman and diu", "दादरा और नगर हवेली", "दमन और दीव"}},
	{"delhi", []string{"delhi", "new delhi", "दिल्ली", "नई दिल्ली"}},
	{"jammu and kashmir", []string{"jammu and kashmir", "jammu kashmir", "kashmir", "जम्मू और कश्मीर", "जम्मू कश्मीर", "कश्मीर"}},
	{"ladakh", []string{"ladakh", "लद्दाख"}},
	{"lakshadweep", []string{"lakshadweep", "लक्षद्वीप"}},
	{"puducherry", []string{"puducherry", "pondicherry", "पुडुचेरी", "पांडिचेरी"}},
}

// Lexicons are compared against normalized query tokens.
var (
	dialectSet = tokenSet(dialectMarkers)
	maleSet    = tokenSet(maleTokens)
	femaleSet  = tokenSet(femaleTokens)
	regionIdx  = buildRegionIndex()
)

func tokenSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[normalizeText(w)] = struct{}{}
	}
	return set
}

// regionAlias is one normalized spelling, padded with spaces so it matches
// only on whole tokens.
type regionAlias struct {
	padded string
	name   string
}

func buildRegionIndex() []regionAlias {
	var idx []regionAlias
	for _, r := range regions {
		for _, a := range r.aliases {
			idx = append(idx, regionAlias{
				padded: " " + joinTokens(tokenize(a)) + " ",
				name:   r.name,
			})
		}
	}
	return idx
}

// Regions returns the canonical names of every known state and union territory.
func Regions() []string {
	names := make([]string, 0, len(regions)+1)
	names = append(names, core.RegionAll)
	for _, r := range regions {
		names = append(names, r.name)
	}
	return names
}

package normalize

import "strings"

// District aliasing is split into two tables applied in order: spelling
// variants first, administrative renames second. Keeping them separate
// means a record arriving under an old official name is recognizably a
// history mapping, not a typo fix, and each table is testable on its own.
//
// A scoping rule both tables obey: districts that share a cardinal-
// direction name in different regions ("East Kameng" vs "West Kameng",
// the Delhi and Sikkim compass districts, Imphal East/West) are distinct
// entities and must never be coalesced. Lookup is exact match on the
// cleaned name, never substring, so a longer name cannot partially match
// a shorter key.

// districtSpelling fixes misspellings, casing, spacing and punctuation
// variants. Values are the canonical spelling of the same district.
var districtSpelling = map[string]string{
	// Andhra Pradesh / Telangana
	"mahabub nagar": "Mahbubnagar",
	"mahabubnagar":  "Mahbubnagar",
	"karim nagar":   "Karimnagar",
	"ananthapur":    "Anantapur",
	"ananthapuramu": "Anantapur",
	"anantpur":      "Anantapur",
	"k.v. rangareddy": "Ranga Reddy",
	"rangareddy":      "Ranga Reddy",
	"vishakhapatnam":  "Visakhapatnam",
	"jangoan":         "Jangaon",
	"medchal?malkajgiri":  "Medchal-Malkajgiri",
	"medchal−malkajgiri": "Medchal-Malkajgiri",
	"medchalâmalkajgiri": "Medchal-Malkajgiri",
	"medchal-malkajgiri":  "Medchal-Malkajgiri",
	"medchal malkajgiri":  "Medchal-Malkajgiri",
	"warangal (urban)":    "Warangal Urban",

	// Assam
	"baska":        "Baksa",
	"kamrup metro": "Kamrup Metropolitan",

	// Bihar
	"samastipur":          "Samstipur",
	"sheikhpura":          "Sheikpura",
	"pashchim chamaparan": "Pashchim Champaran",
	"purvi chamaparan":    "Purvi Champaran",
	"aurangabad(bh)":      "Aurangabad",
	"purnia":              "Purnea",
	"purniya":             "Purnea",
	"muzafarpur":          "Muzaffarpur",
	"muzzafarpur":         "Muzaffarpur",
	"araira":              "Araria",

	// Chhattisgarh
	"janjgir - champa": "Janjgir-Champa",
	"janjgir champa":   "Janjgir-Champa",
	"mohalla-manpur-ambagarh chowki": "Mohla-Manpur-Ambagarh Chouki",

	// Gujarat
	"surendra nagar": "Surendranagar",
	"banas kantha":   "Banaskantha",
	"panch mahals":   "Panchmahal",
	"panchmahals":    "Panchmahal",
	"sabar kantha":   "Sabarkantha",
	"ahmadabad":      "Ahmedabad",
	"mahesana":       "Mehsana",

	// Haryana
	"yamuna nagar": "Yamunanagar",

	// Himachal Pradesh
	"lahaul and spiti": "Lahul and Spiti",
	"lahul & spiti":    "Lahul and Spiti",

	// Jammu and Kashmir
	"budgam":    "Badgam",
	"bandipore": "Bandipur",

	// Jharkhand
	"hazaribagh": "Hazaribag",
	"palamau":    "Palamu",
	"pakaur":     "Pakur",
	"sahibganj":  "Sahebganj",
	"koderma":    "Kodarma",
	"seraikela kharsawan": "Seraikela-Kharsawan",

	// Karnataka
	"chamrajanagar": "Chamarajanagar",
	"chamrajnagar":  "Chamarajanagar",
	"davanagere":    "Davangere",
	"hasan":         "Hassan",

	// Kerala
	"kasargod": "Kasaragod",

	// Madhya Pradesh
	"narsinghpur": "Narsimhapur",

	// Maharashtra
	"buldhana":            "Buldana",
	"gondiya":             "Gondia",
	"mumbai( sub urban )": "Mumbai Suburban",
	"ahmed nagar":         "Ahmednagar",
	"ahmadnagar":          "Ahmednagar",
	"raigarh(mh)":         "Raigad",
	"raigarh":             "Raigad",
	"bid":                 "Beed",
	"dist : thane":        "Thane",
	"mumbai city":         "Mumbai",

	// Mizoram
	"mammit": "Mamit",

	// Odisha
	"jagatsinghapur": "Jagatsinghpur",
	"baleshwar":      "Balasore",
	"baleswar":       "Balasore",
	"jajapur":        "Jajpur",
	"khorda":         "Khordha",
	"khurda":         "Khordha",
	"anugul":         "Angul",
	"anugal":         "Angul",
	"sundergarh":     "Sundargarh",
	"bhadrak(r)":     "Bhadrak",
	"debagarh":       "Deogarh",
	"boudh":          "Baudh",
	"katack":         "Cuttack",

	// Punjab
	"s.a.s nagar(mohali)": "SAS Nagar (Mohali)",
	"ferozepur":           "Firozpur",

	// Rajasthan
	"jhunjhunun":   "Jhunjhunu",
	"jalor":        "Jalore",
	"chittaurgarh": "Chittorgarh",
	"dhaulpur":     "Dholpur",

	// Tamil Nadu
	"thiruvallur":    "Tiruvallur",
	"thiruvarur":     "Tiruvarur",
	"kanniyakumari":  "Kanyakumari",
	"tirupattur":     "Tirupathur",
	"villupuram":     "Viluppuram",
	"kancheepuram":   "Kanchipuram",
	"tiruchirapalli": "Tiruchirappalli",
	"the nilgiris":   "Nilgiris",

	// Uttar Pradesh
	"bulandshahar": "Bulandshahr",
	"maharajganj":  "Mahrajganj",
	"bara banki":   "Barabanki",
	"rae bareli":   "Raebareli",
	"bagpat":       "Baghpat",
	"sant ravidas nagar bhadohi": "Sant Ravidas Nagar",
	"sant ravi das nagar":        "Sant Ravidas Nagar",

	// Uttarakhand
	"hardwar": "Haridwar",

	// West Bengal
	"hawrah":          "Howrah",
	"haora":           "Howrah",
	"hugli":           "Hooghly",
	"hoogly":          "Hooghly",
	"hooghiy":         "Hooghly",
	"purba midnapur":  "Purba Midnapore",
	"paschim midnapur": "Paschim Midnapore",
	"south 24 pargana": "South Twenty Four Parganas",
	"darjiling":        "Darjeeling",
	"puruliya":         "Purulia",
	"barddhaman":       "Bardhaman",
}

// districtRenames maps old official names, merged units and language
// variants of a district's name to the current canonical unit. Entries
// here rewrite administrative history by policy, never by accident.
var districtRenames = map[string]string{
	// Andhra Pradesh / Telangana
	"vizag":    "Visakhapatnam",
	"ysr":      "YSR Kadapa",
	"cuddapah": "YSR Kadapa",
	"kadapa":   "YSR Kadapa",

	// Assam (merged back into the parent district)
	"west karbi anglong": "Karbi Anglong",

	// Bihar (anglicized compass forms of the official names)
	"west champaran":  "Pashchim Champaran",
	"east champaran":  "Purvi Champaran",
	"purba champaran": "Purvi Champaran",

	// Gujarat
	"kachchh": "Kutch",

	// Haryana
	"gurgaon": "Gurugram",

	// Jharkhand
	"pashchimi singhbhum": "West Singhbhum",
	"purbi singhbhum":     "East Singhbhum",

	// Karnataka
	"chickmagalur":    "Chikkamagaluru",
	"chikmagalur":     "Chikkamagaluru",
	"tumkur":          "Tumakuru",
	"shimoga":         "Shivamogga",
	"bangalore rural": "Bengaluru Rural",
	"bangalore":       "Bengaluru Urban",
	"bengaluru":       "Bengaluru Urban",
	"bangalore urban": "Bengaluru Urban",
	"belgaum":         "Belagavi",
	"mysore":          "Mysuru",

	// Kerala
	"trivandrum": "Thiruvananthapuram",
	"alleppey":   "Alappuzha",
	"calicut":    "Kozhikode",
	"trichur":    "Thrissur",

	// Madhya Pradesh
	"hoshangabad": "Narmadapuram",

	// Maharashtra (post-2023 renames mapped back to the dataset name)
	"chhatrapati sambhajinagar": "Aurangabad",
	"chatrapati sambhaji nagar": "Aurangabad",
	"ahilyanagar":               "Ahmednagar",
	"dharashiv":                 "Osmanabad",

	// Puducherry
	"pondicherry": "Puducherry",

	// Tamil Nadu
	"trichy":    "Tiruchirappalli",
	"tuticorin": "Thoothukudi",

	// Uttar Pradesh
	"gautam buddha nagar": "Gautam Budh Nagar",
	"gb nagar":            "Gautam Budh Nagar",
	"noida":               "Gautam Budh Nagar",
	"kanpur nagar":        "Kanpur",
	"kanpur rural":        "Kanpur Dehat",
	"mahamaya nagar":      "Hathras",
	"kheri":               "Lakhimpur Kheri",

	// West Bengal
	"purba medinipur":   "Purba Midnapore",
	"east midnapore":    "Purba Midnapore",
	"east midnapur":     "Purba Midnapore",
	"paschim medinipur": "Paschim Midnapore",
	"west midnapore":    "Paschim Midnapore",
	"west medinipur":    "Paschim Midnapore",
	"medinipur":         "Paschim Midnapore", // unqualified form reports as the western unit
	"north 24 parganas": "North Twenty Four Parganas",
	"south 24 parganas": "South Twenty Four Parganas",
	"south dinajpur":    "Dakshin Dinajpur",
	"north dinajpur":    "Uttar Dinajpur",
	"koch bihar":        "Cooch Behar",
	"kochbihar":         "Cooch Behar",
}

// District canonicalizes a raw district name: strip stray punctuation
// markers, collapse whitespace, apply the spelling table then the rename
// table (case-insensitive exact match), and finally title-case names that
// arrive fully upper- or lower-cased. Blank input maps to Unknown.
func District(raw string) string {
	name := strings.ReplaceAll(raw, "*", "")
	name = collapseSpaces(strings.TrimSpace(name))
	if name == "" {
		return Unknown
	}

	matched := false
	if canon, ok := districtSpelling[strings.ToLower(name)]; ok {
		name = canon
		matched = true
	}
	if canon, ok := districtRenames[strings.ToLower(name)]; ok {
		name = canon
		matched = true
	}
	if matched {
		return name
	}

	if name == strings.ToLower(name) || name == strings.ToUpper(name) {
		return titleCase(name)
	}
	return name
}

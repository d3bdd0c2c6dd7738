// Package jurisdictions is the read-only registry of per-state security-deposit
// statutes. Adding a state is a single table row; the calculators never change.
package jurisdictions

import "sort"

// rules is the statutory table, keyed by two-letter state code.
// Each row must satisfy ClaimDeadlineDays >= ReturnDeadlineDays >= 0 and
// DamagesMultiplier >= 1; see registry_test.go.
var rules = map[string]Rules{
	"FL": {
		Code:                       "FL",
		Name:                       "Florida",
		StatuteTitle:               "Fla. Stat. § 83.49",
		StatuteURL:                 "https://www.leg.state.fl.us/statutes/index.cfm?App_mode=Display_Statute&URL=0000-0099/0083/Sections/0083.49.html",
		ReturnDeadlineDays:         15,
		ClaimDeadlineDays:          30,
		DamagesMultiplier:          1,
		DamagesDescription:         "Landlord forfeits the right to impose a claim on the deposit",
		ItemizedDeductionsRequired: true,
		CertifiedMailRequired:      true,
	},
	"CA": {
		Code:                       "CA",
		Name:                       "California",
		StatuteTitle:               "Cal. Civ. Code § 1950.5",
		StatuteURL:                 "https://leginfo.legislature.ca.gov/faces/codes_displaySection.xhtml?lawCode=CIV&sectionNum=1950.5",
		ReturnDeadlineDays:         21,
		ClaimDeadlineDays:          21,
		DamagesMultiplier:          2,
		DamagesDescription:         "Up to twice the deposit in statutory damages for bad-faith retention",
		ItemizedDeductionsRequired: true,
		CertifiedMailRequired:      false,
	},
	"TX": {
		Code:                       "TX",
		Name:                       "Texas",
		StatuteTitle:               "Tex. Prop. Code § 92.109",
		StatuteURL:                 "https://statutes.capitol.texas.gov/Docs/PR/htm/PR.92.htm",
		ReturnDeadlineDays:         30,
		ClaimDeadlineDays:          30,
		DamagesMultiplier:          3,
		DamagesDescription:         "Three times the wrongfully withheld amount plus $100 for bad faith",
		ItemizedDeductionsRequired: true,
		CertifiedMailRequired:      false,
	},
	"NY": {
		Code:                       "NY",
		Name:                       "New York",
		StatuteTitle:               "N.Y. Gen. Oblig. Law § 7-108",
		StatuteURL:                 "https://www.nysenate.gov/legislation/laws/GOB/7-108",
		ReturnDeadlineDays:         14,
		ClaimDeadlineDays:          14,
		DamagesMultiplier:          2,
		DamagesDescription:         "Up to twice the deposit for willful violations",
		ItemizedDeductionsRequired: true,
		CertifiedMailRequired:      false,
	},
	"WA": {
		Code:                       "WA",
		Name:                       "Washington",
		StatuteTitle:               "RCW 59.18.280",
		StatuteURL:                 "https://app.leg.wa.gov/RCW/default.aspx?cite=59.18.280",
		ReturnDeadlineDays:         21,
		ClaimDeadlineDays:          21,
		DamagesMultiplier:          2,
		DamagesDescription:         "Up to twice the deposit for intentional refusal to comply",
		ItemizedDeductionsRequired: true,
		CertifiedMailRequired:      false,
	},
	"MA": {
		Code:                       "MA",
		Name:                       "Massachusetts",
		StatuteTitle:               "Mass. Gen. Laws ch. 186, § 15B",
		StatuteURL:                 "https://malegislature.gov/Laws/GeneralLaws/PartII/TitleI/Chapter186/Section15B",
		ReturnDeadlineDays:         30,
		ClaimDeadlineDays:          30,
		DamagesMultiplier:          3,
		DamagesDescription:         "Treble damages plus interest and attorney's fees",
		ItemizedDeductionsRequired: true,
		CertifiedMailRequired:      false,
	},
	"AZ": {
		Code:                       "AZ",
		Name:                       "Arizona",
		StatuteTitle:               "A.R.S. § 33-1321",
		StatuteURL:                 "https://www.azleg.gov/ars/33/01321.htm",
		ReturnDeadlineDays:         14,
		ClaimDeadlineDays:          14,
		DamagesMultiplier:          2,
		DamagesDescription:         "Twice the amount wrongfully withheld",
		ItemizedDeductionsRequired: true,
		CertifiedMailRequired:      false,
	},
	"GA": {
		Code:                       "GA",
		Name:                       "Georgia",
		StatuteTitle:               "O.C.G.A. § 44-7-34",
		StatuteURL:                 "https://law.justia.com/codes/georgia/title-44/chapter-7/article-2/section-44-7-34/",
		ReturnDeadlineDays:         30,
		ClaimDeadlineDays:          30,
		DamagesMultiplier:          3,
		DamagesDescription:         "Three times the amount wrongfully withheld plus attorney's fees",
		ItemizedDeductionsRequired: true,
		CertifiedMailRequired:      false,
	},
	"IL": {
		Code:                       "IL",
		Name:                       "Illinois",
		StatuteTitle:               "765 ILCS 710/1",
		StatuteURL:                 "https://www.ilga.gov/legislation/ilcs/ilcs3.asp?ActID=2049",
		ReturnDeadlineDays:         30,
		ClaimDeadlineDays:          45,
		DamagesMultiplier:          2,
		DamagesDescription:         "Twice the deposit plus attorney's fees for bad-faith refusal",
		ItemizedDeductionsRequired: true,
		CertifiedMailRequired:      false,
	},
	"CO": {
		Code:                       "CO",
		Name:                       "Colorado",
		StatuteTitle:               "C.R.S. § 38-12-103",
		StatuteURL:                 "https://law.justia.com/codes/colorado/title-38/article-12/part-1/section-38-12-103/",
		ReturnDeadlineDays:         30,
		ClaimDeadlineDays:          60,
		DamagesMultiplier:          3,
		DamagesDescription:         "Treble the amount wrongfully withheld for willful retention",
		ItemizedDeductionsRequired: true,
		CertifiedMailRequired:      false,
	},
	"NJ": {
		Code:                       "NJ",
		Name:                       "New Jersey",
		StatuteTitle:               "N.J.S.A. 46:8-21.1",
		StatuteURL:                 "https://law.justia.com/codes/new-jersey/title-46/section-46-8-21-1/",
		ReturnDeadlineDays:         30,
		ClaimDeadlineDays:          30,
		DamagesMultiplier:          2,
		DamagesDescription:         "Double the amount wrongfully withheld plus court costs",
		ItemizedDeductionsRequired: true,
		CertifiedMailRequired:      true,
	},
	"PA": {
		Code:                       "PA",
		Name:                       "Pennsylvania",
		StatuteTitle:               "68 P.S. § 250.512",
		StatuteURL:                 "https://law.justia.com/codes/pennsylvania/title-68/chapter-8/section-250-512/",
		ReturnDeadlineDays:         30,
		ClaimDeadlineDays:          30,
		DamagesMultiplier:          2,
		DamagesDescription:         "Double the deposit when no itemized list is provided in time",
		ItemizedDeductionsRequired: true,
		CertifiedMailRequired:      false,
	},
}

// GetByCode returns the ruleset for a state code.
func GetByCode(code string) (Rules, error) {
	r, ok := rules[code]
	if !ok {
		return Rules{}, ErrUnknownJurisdiction
	}
	return r, nil
}

// IsValidCode reports whether a state code has a ruleset entry.
func IsValidCode(code string) bool {
	_, ok := rules[code]
	return ok
}

// ListAll returns every ruleset, ordered by state code.
func ListAll() []Rules {
	out := make([]Rules, 0, len(rules))
	for _, r := range rules {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

package jurisdictions

// Rules holds the statutory security-deposit parameters for one jurisdiction.
// Instances are immutable reference data, populated once at process start.
type Rules struct {
	Code                       string  `json:"code"`
	Name                       string  `json:"name"`
	StatuteTitle               string  `json:"statuteTitle"`
	StatuteURL                 string  `json:"statuteUrl"`
	ReturnDeadlineDays         int     `json:"returnDeadlineDays"`
	ClaimDeadlineDays          int     `json:"claimDeadlineDays"`
	DamagesMultiplier          float64 `json:"damagesMultiplier"`
	DamagesDescription         string  `json:"damagesDescription"`
	ItemizedDeductionsRequired bool    `json:"itemizedDeductionsRequired"`
	CertifiedMailRequired      bool    `json:"certifiedMailRequired"`
}

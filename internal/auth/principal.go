package auth

// Principal is the caller's identity with its roles resolved once at
// authentication time. Role checks downstream read these fields instead of
// querying profile tables again.
type Principal struct {
	UserID       string `json:"user_id"`
	BenefactorID string `json:"benefactor_id,omitempty"`
	CharityID    string `json:"charity_id,omitempty"`
}

func (p Principal) IsBenefactor() bool {
	return p.BenefactorID != ""
}

func (p Principal) IsCharityOwner() bool {
	return p.CharityID != ""
}

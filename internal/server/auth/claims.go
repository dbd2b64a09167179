package auth

// Claim is the identity carried by a token. It is trusted as issued: the
// server does not re-read the user record when verifying a token.
type Claim struct {
	UserID      string
	Email       string
	DisplayName string
	Tier        Tier
}

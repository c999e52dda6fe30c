package request

// CredentialIssueRequest carries the subject of a credential issuance: the
// member the badge is made out to. The payment id travels in the path.
type CredentialIssueRequest struct {
	Name       string `json:"name" binding:"required"`
	Profession string `json:"profession"`
	Email      string `json:"email" binding:"required"`
	Photo      string `json:"photo"`
}

package googleauth

// UserInfo is the identity of a signed-in Google account.
type UserInfo struct {
	Email string
	Name  string
}

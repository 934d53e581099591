package entities

import "fmt"

// Credential is a Docker Hub username and personal access token pair.
type Credential struct {
	Username string
	Password string
}

// String never prints the password, so a Credential is safe to log.
func (c Credential) String() string {
	return fmt.Sprintf("Credential{Username: %q, Password: <redacted>}", c.Username)
}

// LoginRequest is the JSON body of the login endpoint.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// NewLoginRequest converts a Credential into its wire form.
func NewLoginRequest(cred Credential) LoginRequest {
	return LoginRequest{Username: cred.Username, Password: cred.Password}
}

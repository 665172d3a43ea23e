package handler

const oopsErr = "Oops! Something went wrong. Please try again later."

// messages rendered into the landing page; one generic rejection for login so
// an attacker cannot tell unknown user from wrong password
const (
	invalidCredentialsMsg  = "Invalid username or password."
	usernameTakenMsg       = "This username is already taken."
	invalidRegistrationMsg = "Username (1-20 characters) and password are required."
)

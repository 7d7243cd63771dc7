package adapter

// PasswordService hashes account passwords at registration and checks them at
// login and account deletion.
type PasswordService interface {
	HashPassword(password string) (string, error)
	// VerifyPassword returns an error when password does not match hashedPassword.
	VerifyPassword(hashedPassword, password string) error
}

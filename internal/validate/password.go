package validate

const minimumPasswordLength = 12

func Password(password string) error {
	return all(
		hasMinLength(minimumPasswordLength),
		hasUppercase(),
		hasLowercase(),
		hasDigit(),
		hasSymbol(),
	)(password)
}

package validate

const (
	FlagKeyMinLength = 2
	FlagKeyMaxLength = 64
)

// FlagKey accepts lowercase dotted identifiers such as
// "billing.invoices_v2" or "search-beta".
func FlagKey(flagKey string) error {
	return all(
		hasMinLength(FlagKeyMinLength),
		hasMaxLength(FlagKeyMaxLength),
		isLatinAlnumWith('.', '-', '_'),
		hasAlnumBoundaries(),
	)(flagKey)
}

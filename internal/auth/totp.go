package auth

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
	"github.com/skip2/go-qrcode"
)

var totpOpts = totp.ValidateOpts{
	Period:    30,
	Skew:      1,
	Digits:    6,
	Algorithm: otp.AlgorithmSHA1,
}

// GetTotpUrl returns the otpauth:// provisioning url for an operator's
// authenticator app.
func GetTotpUrl(issuer, accountId, secret string) string {
	label := url.PathEscape(fmt.Sprintf("%s:%s", issuer, accountId))
	q := url.Values{}
	q.Set("secret", strings.ToUpper(secret)) // most apps expect uppercase
	q.Set("issuer", issuer)
	q.Set("algorithm", totpOpts.Algorithm.String())
	q.Set("digits", fmt.Sprintf("%d", totpOpts.Digits))
	q.Set("period", fmt.Sprintf("%d", totpOpts.Period))
	return fmt.Sprintf("otpauth://totp/%s?%s", label, q.Encode())
}

// GetTotpQrCode renders the provisioning url as a QR code suitable
// for printing to a terminal, using half-block characters so that two
// bitmap rows fit in every text row.
func GetTotpQrCode(issuer, accountId, secret string) (string, error) {
	qr, err := qrcode.New(GetTotpUrl(issuer, accountId, secret), qrcode.Low)
	if err != nil {
		return "", fmt.Errorf("failed to create qr code: %w", err)
	}
	var b strings.Builder
	bitmap := qr.Bitmap()
	for y := 0; y < len(bitmap); y += 2 {
		for x := 0; x < len(bitmap[y]); x++ {
			top := bitmap[y][x]
			bottom := false
			if y+1 < len(bitmap) {
				bottom = bitmap[y+1][x]
			}
			switch {
			case top && bottom:
				fmt.Fprintf(&b, "█")
			case top && !bottom:
				fmt.Fprintf(&b, "▀")
			case !top && bottom:
				fmt.Fprintf(&b, "▄")
			default:
				fmt.Fprintf(&b, " ")
			}
		}
		fmt.Fprintf(&b, "\n")
	}
	return b.String(), nil
}

func CreateTotpSeed(issuer, accountName string) (string, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      issuer,
		AccountName: accountName,
	})
	if err != nil {
		return "", err
	}
	return key.Secret(), nil
}

func ValidateTotpToken(secret string, token string) (bool, error) {
	return totp.ValidateCustom(token, secret, time.Now().UTC(), totpOpts)
}

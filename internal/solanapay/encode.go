package solanapay

import (
	"net/url"
	"strings"
)

// EncodeURL serializes fields into a canonical transfer request URL.
// Field order is fixed (amount, spl-token, reference, label, message,
// memo) so identical input yields a byte-identical string.
func EncodeURL(f Fields) (string, error) {
	if f.Recipient.IsZero() {
		return "", ErrMissingRecipient
	}
	if f.Amount != nil && f.Amount.IsNegative() {
		return "", ErrNegativeAmount
	}

	var b strings.Builder
	b.WriteString(Scheme)
	b.WriteString(f.Recipient.String())

	params := make([]string, 0, 5+len(f.References))
	if f.Amount != nil {
		params = append(params, "amount="+f.Amount.String())
	}
	if f.SPLToken != nil {
		params = append(params, "spl-token="+f.SPLToken.String())
	}
	for _, ref := range f.References {
		params = append(params, "reference="+ref.String())
	}
	if f.Label != "" {
		params = append(params, "label="+url.QueryEscape(f.Label))
	}
	if f.Message != "" {
		params = append(params, "message="+url.QueryEscape(f.Message))
	}
	if f.Memo != "" {
		params = append(params, "memo="+url.QueryEscape(f.Memo))
	}

	if len(params) > 0 {
		b.WriteString("?")
		b.WriteString(strings.Join(params, "&"))
	}
	return b.String(), nil
}

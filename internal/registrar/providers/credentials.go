package providers

const (
	FieldAcceptConditions        = "acceptConditions"
	FieldOwnerLegalAge           = "ownerLegalAge"
	FieldWaiveRetractationPeriod = "waiveRetractationPeriod"
)

// ConsentFields are the operator-asserted flags required before any purchase.
var ConsentFields = []string{
	FieldAcceptConditions,
	FieldOwnerLegalAge,
	FieldWaiveRetractationPeriod,
}

// CredentialBag is a provider-shaped set of credential fields, as decoded from
// JSON. It is only ever held in memory for the duration of a request.
type CredentialBag map[string]any

// String returns the field as a non-empty string.
func (b CredentialBag) String(field string) (string, bool) {
	s, ok := b[field].(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// Has reports whether the field is present, whatever its value.
func (b CredentialBag) Has(field string) bool {
	_, ok := b[field]
	return ok
}

// RequireStrings checks that every field is a non-empty string.
func (b CredentialBag) RequireStrings(provider string, fields ...string) error {
	for _, f := range fields {
		if _, ok := b.String(f); !ok {
			return NewError(ErrorSchema, provider, "Bad authData schema", nil)
		}
	}
	return nil
}

// RequireConsent checks that every consent flag is the boolean true.
// Truthy strings or numbers do not count.
func (b CredentialBag) RequireConsent(provider string) error {
	for _, f := range ConsentFields {
		if v, ok := b[f].(bool); !ok || !v {
			return NewError(ErrorConsent, provider, "The user has not given explicit consent", nil)
		}
	}
	return nil
}

// Pick copies the named fields present in b into a new bag.
func (b CredentialBag) Pick(fields ...string) CredentialBag {
	out := make(CredentialBag, len(fields))
	for _, f := range fields {
		if v, ok := b[f]; ok {
			out[f] = v
		}
	}
	return out
}

// Redacted returns a copy with secret fields masked, safe to echo back.
func (b CredentialBag) Redacted(secrets ...string) CredentialBag {
	out := make(CredentialBag, len(b))
	for k, v := range b {
		out[k] = v
	}
	for _, s := range secrets {
		if _, ok := out[s]; ok {
			out[s] = "********"
		}
	}
	return out
}

package entities

// TranslationItem is one catalog entry: a dot-delimited key, the
// immutable source string, and the evolving translated counterpart.
// Identity is the key.
//
// TargetText distinguishes "unset" (nil) from "set to the empty
// string": an empty target round-trips through the output document
// but does not count as translated.
type TranslationItem struct {
	Key        string
	SourceText string
	TargetText *string
}

// HasTarget reports whether a target has been set at all, empty or not.
func (i *TranslationItem) HasTarget() bool {
	return i.TargetText != nil
}

// IsTranslated reports whether the item carries a non-empty target.
func (i *TranslationItem) IsTranslated() bool {
	return i.TargetText != nil && *i.TargetText != ""
}

// Target returns the target text, or "" when unset.
func (i *TranslationItem) Target() string {
	if i.TargetText == nil {
		return ""
	}
	return *i.TargetText
}

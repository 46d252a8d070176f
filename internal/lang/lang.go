// Package lang holds per-language tag inventories used during compression
// and keyphrase extraction: the verb tags required in a valid compression,
// and the syntactic filter/patterns that admit keyphrase candidates.
package lang

import "fmt"

// Profile bundles the language-dependent tag sets.
type Profile struct {
	// Code is the language code (e.g. "en").
	Code string

	// VerbTags are the POS tags counted as verbs; at least one verb tag
	// must occur in every accepted compression.
	VerbTags map[string]struct{}

	// SyntacticFilter lists the POS tags admitted as keyphrase words.
	SyntacticFilter map[string]struct{}

	// SyntacticPatterns are regexes that the concatenated POS tags of a
	// keyphrase candidate must all match.
	SyntacticPatterns []string
}

// For returns the profile for a language code. Supported codes are "en"
// and "fr"; anything else is an error.
func For(code string) (Profile, error) {
	switch code {
	case "en":
		return Profile{
			Code:              "en",
			VerbTags:          tagSet("VB", "VBD", "VBP", "VBZ", "VH", "VHD", "VHP", "VV", "VVD", "VVP", "VVZ"),
			SyntacticFilter:   tagSet("JJ", "NNP", "NNS", "NN", "NNPS"),
			SyntacticPatterns: []string{`^(JJ)*(NNP|NNS|NN)+$`},
		}, nil
	case "fr":
		return Profile{
			Code:              "fr",
			VerbTags:          tagSet("V", "VPP", "VINF"),
			SyntacticFilter:   tagSet("NPP", "NC", "ADJ"),
			SyntacticPatterns: []string{`^(ADJ)*(NC|NPP)+(ADJ)*$`},
		}, nil
	default:
		return Profile{}, fmt.Errorf("unsupported language %q", code)
	}
}

// IsVerb reports whether tag is in the profile's verb tag set.
func (p Profile) IsVerb(tag string) bool {
	_, ok := p.VerbTags[tag]
	return ok
}

// InFilter reports whether tag is admitted by the syntactic filter.
func (p Profile) InFilter(tag string) bool {
	_, ok := p.SyntacticFilter[tag]
	return ok
}

func tagSet(tags ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		s[t] = struct{}{}
	}
	return s
}

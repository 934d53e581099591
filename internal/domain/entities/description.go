package entities

// MaxShortDescriptionLength is the Docker Hub limit for the short description.
const MaxShortDescriptionLength = 100

// Description is the payload of the repository metadata PATCH.
type Description struct {
	Short string `json:"description"`
	Full  string `json:"full_description"`
}

// TruncateShort cuts the short description to MaxShortDescriptionLength
// characters. It reports the original length and whether a cut happened.
func (d *Description) TruncateShort() (int, bool) {
	runes := []rune(d.Short)
	if len(runes) <= MaxShortDescriptionLength {
		return len(runes), false
	}
	d.Short = string(runes[:MaxShortDescriptionLength])
	return len(runes), true
}

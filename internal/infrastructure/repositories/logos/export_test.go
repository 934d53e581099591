package logos

var (
	PrefixChain  = prefixChain
	StripVersion = stripVersion
)

package domain

// Persisted record keys. The names form a flat namespace shared with the
// legacy console's data files, so exported snapshots stay importable.
const (
	KeySiteConfig = "nonaBeautyConfig"
	KeyProducts   = "nonaProducts"
	KeyOffers     = "nonaOffers"
	KeyCategories = "nonaCategories"
	KeyImages     = "nonaImages"
	KeyAdminPW    = "nonaAdminPW"
	KeyUserType   = "userType"
	KeyUserEmail  = "userEmail"

	// KeyProfilePrefix + email addresses a per-user profile record
	KeyProfilePrefix = "userProfile_"
)

// ID prefixes per record kind
const (
	PrefixProduct  = "prod"
	PrefixOffer    = "off"
	PrefixCategory = "cat"
	PrefixImage    = "img"
)

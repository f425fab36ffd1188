package constant

const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	// AdminEmailDomain marks company accounts; role is derived from it once,
	// at registration.
	AdminEmailDomain = "@alphaware.com"

	AccessTokenCookie = "accessToken"

	ContractFullTime = "Full Time"
	ContractPartTime = "Part Time"

	DefaultResumeURL = "https://morth.nic.in/sites/default/files/dd12-13_0.pdf"
)

package validator

// length limits github.com enforces for logins and repository slugs
const (
	maxOwnerLen = 39
	maxRepoLen  = 100
)

// ensure an owner login fits github's length limit without calling the API
func ValidateOwnerLen(dataLen int) bool {
	return dataLen > 0 && dataLen <= maxOwnerLen
}

// ensure a repository name fits github's length limit without calling the API
func ValidateRepoLen(dataLen int) bool {
	return dataLen > 0 && dataLen <= maxRepoLen
}

// ensure a repository name only uses characters github accepts in slugs
func ValidateRepoChars(name string) bool {
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '.' || r == '-' || r == '_':
		default:
			return false
		}
	}
	return len(name) > 0
}

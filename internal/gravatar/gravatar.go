package gravatar

import (
	"crypto/md5"
	"fmt"
	"strings"
)

// URL derives a gravatar image URL from an email address. Size 200, rating
// pg, mystery-man fallback for addresses without a gravatar.
func URL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	hash := md5.Sum([]byte(normalized))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=200&r=pg&d=mm", hash)
}

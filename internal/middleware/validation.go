package middleware

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v3"
)

// Field length limits matching database schema constraints.
const (
	MaxPostIDLen    = 64 // posts.post_id VARCHAR(64)
	MaxCreatorIDLen = 32 // creators.creator_id VARCHAR(32)
	MaxCycleIDLen   = 32 // cycles.cycle_id VARCHAR(32)
	ThumbHashLen    = 16 // posts.thumbnail_hash CHAR(16), hex-encoded 64 bits
)

var (
	// idRe matches platform post IDs and internal IDs: alphanumeric, dash,
	// underscore.
	idRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	// hexRe matches lowercase hex strings (thumbnail perceptual hashes).
	hexRe = regexp.MustCompile(`^[0-9a-f]+$`)
)

// ErrorResponse is a helper that returns a standard API error response.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// ValidatePostID checks that a post ID is well-formed and within DB limits.
func ValidatePostID(id string) (string, string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", "postId is required"
	}
	if len(id) > MaxPostIDLen {
		return "", "postId must be at most 64 characters"
	}
	if !idRe.MatchString(id) {
		return "", "postId contains invalid characters"
	}
	return id, ""
}

// ValidateCreatorID checks that a creator ID is well-formed.
func ValidateCreatorID(id string) (string, string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", "creatorId is required"
	}
	if len(id) > MaxCreatorIDLen {
		return "", "creatorId must be at most 32 characters"
	}
	if !idRe.MatchString(id) {
		return "", "creatorId contains invalid characters"
	}
	return id, ""
}

// ValidateCycleID checks that a cycle ID is well-formed.
func ValidateCycleID(id string) (string, string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", "cycleId is required"
	}
	if len(id) > MaxCycleIDLen {
		return "", "cycleId must be at most 32 characters"
	}
	if !idRe.MatchString(id) {
		return "", "cycleId contains invalid characters"
	}
	return id, ""
}

// ValidateThumbHash checks the thumbnail hash format. An empty hash is
// valid — posts without thumbnails simply never thumbnail-match.
func ValidateThumbHash(hash string) (string, string) {
	hash = strings.TrimSpace(strings.ToLower(hash))
	if hash == "" {
		return "", ""
	}
	if len(hash) != ThumbHashLen {
		return "", "thumbnailHash must be 16 hex characters"
	}
	if !hexRe.MatchString(hash) {
		return "", "thumbnailHash must be hexadecimal"
	}
	return hash, ""
}

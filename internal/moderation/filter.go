// Package moderation screens public comment submissions before they
// are persisted. Rules run in order and short-circuit on the first
// violation, each with its own user-facing message.
package moderation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Submission is a public comment before persistence.
type Submission struct {
	AuthorName  string
	AuthorEmail string
	Content     string
	Website     string
}

// Violation is a rejected submission with a message safe to show the
// submitter.
type Violation struct {
	Message string
}

func (v *Violation) Error() string {
	return v.Message
}

// Rule inspects a submission and returns a violation or nil.
type Rule func(s Submission) *Violation

// Filter is an ordered rule set. Construct with NewFilter for the
// default policy, or compose your own rules for testing.
type Filter struct {
	rules []Rule
}

func New(rules ...Rule) *Filter {
	return &Filter{rules: rules}
}

// NewFilter returns the default submission policy.
func NewFilter() *Filter {
	return New(
		RequiredFields,
		NameLength(100),
		ContentLength(3, 5000),
		NoLinks,
		NoPromoPhrases,
		ValidEmail,
		NoWebsiteField,
	)
}

// Check runs the rules in order and returns the first violation, or
// nil when the submission is acceptable.
func (f *Filter) Check(s Submission) *Violation {
	for _, rule := range f.rules {
		if v := rule(s); v != nil {
			return v
		}
	}
	return nil
}

var (
	urlPattern      = regexp.MustCompile(`(?i)https?://\S+`)
	wwwPattern      = regexp.MustCompile(`(?i)(^|\s)www\.\S+`)
	knownTLDs       = `(com|net|org|info|biz|io|co|xyz|online|site|top|club|shop|store|live|vip)`
	bareDomain      = regexp.MustCompile(`(?i)(^|\s)[a-z0-9-]+\.` + knownTLDs + `(\s|$|[^a-z])`)
	emailLikeToken  = regexp.MustCompile(`(?i)\S+@\S+\.` + knownTLDs)
	spacedOutDomain = regexp.MustCompile(`(?i)(^|\s)[a-z0-9-]+\s+\.\s+` + knownTLDs + `(\s|$|[^a-z])`)
	emailShape      = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[a-zA-Z]{2,}$`)
)

var promoPhrases = []string{
	"click here",
	"visit my",
	"free money",
	"guaranteed",
	"buy now",
	"limited offer",
	"make money fast",
	"work from home",
}

// RequiredFields rejects blank name, email or content.
func RequiredFields(s Submission) *Violation {
	if strings.TrimSpace(s.AuthorName) == "" ||
		strings.TrimSpace(s.AuthorEmail) == "" ||
		strings.TrimSpace(s.Content) == "" {
		return &Violation{Message: "Name, email and comment text are required"}
	}
	return nil
}

func NameLength(max int) Rule {
	return func(s Submission) *Violation {
		if utf8.RuneCountInString(s.AuthorName) > max {
			return &Violation{Message: fmt.Sprintf("Name must be %d characters or fewer", max)}
		}
		return nil
	}
}

func ContentLength(min, max int) Rule {
	return func(s Submission) *Violation {
		n := utf8.RuneCountInString(strings.TrimSpace(s.Content))
		if n < min || n > max {
			return &Violation{Message: fmt.Sprintf("Comment must be between %d and %d characters", min, max)}
		}
		return nil
	}
}

// NoLinks rejects content carrying URLs, bare domains, email-like
// tokens or spaced-out domains ("example . com").
func NoLinks(s Submission) *Violation {
	content := s.Content
	if urlPattern.MatchString(content) ||
		wwwPattern.MatchString(content) ||
		bareDomain.MatchString(content) ||
		emailLikeToken.MatchString(content) ||
		spacedOutDomain.MatchString(content) {
		return &Violation{Message: "Comments may not contain links"}
	}
	return nil
}

// NoPromoPhrases rejects common promotional phrasing.
func NoPromoPhrases(s Submission) *Violation {
	lower := strings.ToLower(s.Content)
	for _, phrase := range promoPhrases {
		if strings.Contains(lower, phrase) {
			return &Violation{Message: "Comment looks like promotional content"}
		}
	}
	return nil
}

func ValidEmail(s Submission) *Violation {
	if !emailShape.MatchString(strings.TrimSpace(s.AuthorEmail)) {
		return &Violation{Message: "A valid email address is required"}
	}
	return nil
}

// NoWebsiteField rejects any submission carrying a website value. The
// field is a pure spam vector and is rejected outright rather than
// silently dropped.
func NoWebsiteField(s Submission) *Violation {
	if strings.TrimSpace(s.Website) != "" {
		return &Violation{Message: "Website field is not accepted"}
	}
	return nil
}

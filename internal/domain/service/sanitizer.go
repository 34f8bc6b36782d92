package service

// TextSanitizer strips markup from user-supplied free text before it is stored.
type TextSanitizer interface {
	Sanitize(text string) string
}

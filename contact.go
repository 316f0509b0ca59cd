package main

import (
	"errors"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ContactFormDraft is one submission of the contact form. It is used to
// build a mailto link and then dropped. The email shape is left to the
// browser's type=email check; only presence is enforced here.
type ContactFormDraft struct {
	Name    string `form:"name" binding:"required"`
	Email   string `form:"email" binding:"required"`
	Message string `form:"message" binding:"required"`
}

func contactSubject(d ContactFormDraft) string {
	return "Website contact from " + d.Name
}

func contactBody(d ContactFormDraft) string {
	return "Name: " + d.Name + "\nEmail: " + d.Email + "\n\n" + d.Message
}

// BuildMailto returns the mailto URI that hands the draft to the visitor's
// mail client.
func BuildMailto(recipient string, d ContactFormDraft) string {
	return "mailto:" + recipient +
		"?subject=" + encodeURIComponent(contactSubject(d)) +
		"&body=" + encodeURIComponent(contactBody(d))
}

// uriComponentMarks are the sub-delims encodeURIComponent leaves as is but
// url.QueryEscape escapes.
var uriComponentMarks = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// encodeURIComponent percent-encodes s like the JavaScript function of the
// same name: everything but A-Z a-z 0-9 - _ . ! ~ * ' ( ) is escaped and
// spaces become %20, since mail clients do not treat '+' as a space.
func encodeURIComponent(s string) string {
	return uriComponentMarks.Replace(url.QueryEscape(s))
}

// invalidContactFields lists the form fields named in a binding error.
func invalidContactFields(err error) map[string]bool {
	fields := map[string]bool{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fields
	}
	for _, fe := range verrs {
		switch fe.Field() {
		case "Name":
			fields["name"] = true
		case "Email":
			fields["email"] = true
		case "Message":
			fields["message"] = true
		}
	}
	return fields
}
